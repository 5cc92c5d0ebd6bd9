// Package match turns raw BLAST-style similarity rows into canonical Match
// records: gene pairs normalized to lexical order, tagged with their shared
// family id and chromosome-pair key, and tallied per chromosome pair.
package match

import (
	"strings"

	"github.com/grailbio/base/log"
	"github.com/tanghaibao/mcscan/gene"
)

// Match is a homology hit between two distinct genes of the same family.
// Gene1 is always lexically smaller than Gene2's name.
type Match struct {
	Gene1, Gene2 *gene.Gene
	Family       int
	ChromPair    string // "chrA&chrB", already in Gene1/Gene2 order
	Score        float64
	PairID       int
}

// Row is one pre-tokenized BLAST -m8-style record.
type Row struct {
	Gene1, Gene2 string
	Score        float64
}

// ChromPair collects every Match between a fixed pair of chromosomes.
type ChromPair struct {
	Key     string
	Matches []*Match
}

// Loader normalizes and accumulates Matches, and the per-chromosome-pair
// tallies the chainer dispatches on.
type Loader struct {
	idx        *gene.Index
	matches    []*Match
	chromPairs map[string]*ChromPair
	nextPairID int
	discarded  int
}

// NewLoader creates a Loader bound to a gene Index.
func NewLoader(idx *gene.Index) *Loader {
	return &Loader{
		idx:        idx,
		chromPairs: make(map[string]*ChromPair),
	}
}

// Load processes one BLAST row: self-hits, references to unknown genes,
// genes with no chromosome, and cross-family hits are all silently dropped
// (spec §4.2, §7 — these are progress events, not errors).
func (l *Loader) Load(r Row) {
	if r.Gene1 == r.Gene2 {
		l.discarded++
		return
	}

	name1, name2 := r.Gene1, r.Gene2
	if strings.Compare(name1, name2) > 0 {
		name1, name2 = name2, name1
	}

	g1, ok1 := l.idx.FindGene(name1)
	g2, ok2 := l.idx.FindGene(name2)
	if !ok1 || !ok2 {
		l.discarded++
		return
	}
	if g1.Chrom == "" || g2.Chrom == "" {
		l.discarded++
		return
	}
	if g1.Family != g2.Family {
		l.discarded++
		return
	}

	key := g1.Chrom + "&" + g2.Chrom
	m := &Match{
		Gene1:     g1,
		Gene2:     g2,
		Family:    g1.Family,
		ChromPair: key,
		Score:     r.Score,
		PairID:    l.nextPairID,
	}
	l.nextPairID++
	l.matches = append(l.matches, m)

	cp, ok := l.chromPairs[key]
	if !ok {
		cp = &ChromPair{Key: key}
		l.chromPairs[key] = cp
	}
	cp.Matches = append(cp.Matches, m)
}

// LoadAll runs Load over every row and logs a progress summary, mirroring
// the original's "%d matches imported (%d discarded)" checkpoint.
func (l *Loader) LoadAll(rows []Row) {
	total := len(rows)
	for _, r := range rows {
		l.Load(r)
	}
	log.Printf("%d matches imported (%d discarded)", len(l.matches), total-len(l.matches))
}

// Matches returns every accumulated Match in load order.
func (l *Loader) Matches() []*Match {
	return l.matches
}

// ChromPairs returns the accumulated chromosome-pair tallies.
func (l *Loader) ChromPairs() map[string]*ChromPair {
	return l.chromPairs
}

// SameGenome reports whether a "chrA&chrB" key names an intra-genome pair,
// i.e. both chromosome labels share their two-letter genome prefix.
func SameGenome(chromPairKey string) bool {
	i := strings.IndexByte(chromPairKey, '&')
	if i < 2 || len(chromPairKey) < i+3 {
		return false
	}
	a := chromPairKey[:2]
	b := chromPairKey[i+1 : i+3]
	return a == b
}
