// Package synteny implements the repeat filter, the colinear chainer, and
// the append-only chain store (spec components C, D, E): sparse 1-D
// dynamic programming over a 2-D point set, producing maximal scoring
// colinear chains under a gap-penalized scoring model.
package synteny

import (
	"sort"

	"github.com/tanghaibao/mcscan/gene"
)

// Segment is one chain surviving the chainer: a maximal colinear run of
// anchors between two chromosomes.
type Segment struct {
	PairIDs    []int
	S1, T1     *gene.Gene // extreme endpoints on chrA, s1.Pos <= t1.Pos
	S2, T2     *gene.Gene // extreme endpoints on chrB, s2.Pos <= t2.Pos iff SameStrand
	Score      float64
	EValue     float64
	ChromPair  string
	SameStrand bool
}

// Store is the append-only set of all accepted Segments, plus a
// per-chromosome index of which Segments touch it (spec component E).
type Store struct {
	segments []*Segment
	byChrom  map[string][]*Segment
}

// NewStore creates an empty chain store.
func NewStore() *Store {
	return &Store{byChrom: make(map[string][]*Segment)}
}

// Add appends a Segment and indexes it by both endpoint chromosomes.
func (s *Store) Add(seg *Segment) {
	s.segments = append(s.segments, seg)
	chromA, chromB := seg.S1.Chrom, seg.S2.Chrom
	s.byChrom[chromA] = append(s.byChrom[chromA], seg)
	if chromB != chromA {
		s.byChrom[chromB] = append(s.byChrom[chromB], seg)
	}
}

// All returns every Segment, ordered by (chromosome-pair key, score
// descending) per spec §5's ordering guarantee.
func (s *Store) All() []*Segment {
	out := append([]*Segment(nil), s.segments...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ChromPair != out[j].ChromPair {
			return out[i].ChromPair < out[j].ChromPair
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// On returns every Segment with an endpoint on chrom.
func (s *Store) On(chrom string) []*Segment {
	return s.byChrom[chrom]
}

// Len reports the total number of stored Segments.
func (s *Store) Len() int {
	return len(s.segments)
}
