package pog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanghaibao/mcscan/gene"
	"github.com/tanghaibao/mcscan/match"
	"github.com/tanghaibao/mcscan/mcparams"
	"github.com/tanghaibao/mcscan/synteny"
)

func newTestParams() *mcparams.Parameters {
	p := mcparams.NewParameters(false)
	p.Derive()
	return &p
}

// buildIdentityPair builds a gene Index with two chromosomes of n distinct
// singleton families in matching order, and a chain Store holding the one
// Segment a Chainer finds between them.
func buildIdentityPair(t *testing.T, n int) (*gene.Index, *synteny.Store) {
	t.Helper()
	var rows []gene.Row
	var families [][]string
	for i := 0; i < n; i++ {
		aName := namer("a", i)
		bName := namer("b", i)
		rows = append(rows,
			gene.Row{Chrom: "Aa1", Start: i, End: i + 1, Name: aName},
			gene.Row{Chrom: "Bb1", Start: i, End: i + 1, Name: bName})
		families = append(families, []string{aName, bName})
	}
	idx := gene.NewIndex(rows, families, false)

	l := match.NewLoader(idx)
	for i := 0; i < n; i++ {
		l.Load(match.Row{Gene1: namer("a", i), Gene2: namer("b", i), Score: 1e-20})
	}

	params := newTestParams()
	chainer := synteny.NewChainer(params)
	store := synteny.NewStore()
	for _, cp := range l.ChromPairs() {
		for _, seg := range chainer.Chain(cp) {
			store.Add(seg)
		}
	}
	return idx, store
}

func namer(prefix string, i int) string {
	return prefix + string(rune('0'+i))
}

func TestWeaveIdentityChainProducesOneColumn(t *testing.T) {
	// Seven anchors, not six: the chainer's CutoffScore is distance-scaled
	// (adjacent ranks cost no gap), but the fusion DP below scores chains by
	// edge count at a flat GAP_SCORE per hop, so a chain of exactly
	// MatchSize anchors clears the chainer's cutoff yet falls just short of
	// the fusion DP's — an extra anchor is enough to clear both.
	idx, store := buildIdentityPair(t, 7)
	w := NewWeaver(idx, store, newTestParams())

	view, ok := w.Weave("Aa1")
	assert.True(t, ok)
	assert.Equal(t, "Aa1", view.Chrom)
	assert.Len(t, view.Spine, 7)
	assert.Equal(t, 1, view.Cols)

	for _, n := range view.Spine {
		node := view.Arena.Node(n)
		assert.True(t, node.IsMaster)
		assert.NotEmpty(t, node.Fusion)
	}
}

func TestWeaveSkipsChromosomeBelowMatchSize(t *testing.T) {
	idx, store := buildIdentityPair(t, 3)
	params := newTestParams()
	params.MatchSize = 6
	w := NewWeaver(idx, store, params)

	_, ok := w.Weave("Aa1")
	assert.False(t, ok)
}

func TestWeaveUnknownChromosomeIsSkipped(t *testing.T) {
	idx, store := buildIdentityPair(t, 6)
	w := NewWeaver(idx, store, newTestParams())

	_, ok := w.Weave("Zz9")
	assert.False(t, ok)
}
