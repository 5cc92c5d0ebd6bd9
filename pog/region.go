package pog

import (
	"sort"

	"github.com/tanghaibao/mcscan/gene"
	"github.com/tanghaibao/mcscan/match"
	"github.com/tanghaibao/mcscan/synteny"
)

// SynRegion binds a chain Segment to one orientation: which of its two
// endpoint chromosomes plays master (the reference spine being woven) and
// which plays partner (spec component F2). A self-chain whose both
// endpoints land on the same reference chromosome contributes two
// SynRegions, one per orientation, mirroring cluster_POG's independent
// match1/match2 pushes.
type SynRegion struct {
	Seg    *synteny.Segment
	Match1 bool // true: Seg.S1/T1 are the master range, S2/T2 the partner range
	Score  float64
	Col    int
}

// masterRange returns the master-side endpoint genes of a region.
func (r *SynRegion) masterRange() (a, b *gene.Gene) {
	if r.Match1 {
		return r.Seg.S1, r.Seg.T1
	}
	return r.Seg.S2, r.Seg.T2
}

// partnerRange returns the partner-side endpoint genes and chromosome.
func (r *SynRegion) partnerRange() (a, b *gene.Gene, chrom string) {
	if r.Match1 {
		return r.Seg.S2, r.Seg.T2, r.Seg.S2.Chrom
	}
	return r.Seg.S1, r.Seg.T1, r.Seg.S1.Chrom
}

// gatherRegions collects every SynRegion touching chrom from the chain
// store, sorted by descending score (spec F2: higher-scoring chains fuse
// first and claim the spine before weaker, possibly conflicting ones are
// considered).
func gatherRegions(store *synteny.Store, chrom string) []*SynRegion {
	var regions []*SynRegion
	for _, seg := range store.On(chrom) {
		if seg.S1.Chrom == chrom {
			regions = append(regions, &SynRegion{Seg: seg, Match1: true, Score: seg.Score})
		}
		if seg.S2.Chrom == chrom {
			regions = append(regions, &SynRegion{Seg: seg, Match1: false, Score: seg.Score})
		}
	}
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Score > regions[j].Score
	})
	return regions
}

// skipSelfGenome reports whether a region should be skipped because both of
// its endpoint chromosomes belong to the same genome and the run was asked
// to restrict synteny to cross-genome pairs only (flag -b, spec §12
// supplemented feature carried over from check_self_genome/IN_SYNTENY).
func skipSelfGenome(r *SynRegion, inSynteny bool) bool {
	return inSynteny && match.SameGenome(r.Seg.ChromPair)
}
