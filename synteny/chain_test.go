package synteny

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanghaibao/mcscan/gene"
	"github.com/tanghaibao/mcscan/match"
	"github.com/tanghaibao/mcscan/mcparams"
)

func newParams() *mcparams.Parameters {
	p := mcparams.NewParameters(false)
	p.Derive()
	return &p
}

func buildChromPair(t *testing.T, pairs [][2]int) (*match.ChromPair, *gene.Index) {
	t.Helper()
	var rows []gene.Row
	var families [][]string
	for i, xy := range pairs {
		a := gene.Row{Chrom: "Aa1", Start: xy[0], End: xy[0] + 1, Name: namer("a", i)}
		b := gene.Row{Chrom: "Bb1", Start: xy[1], End: xy[1] + 1, Name: namer("b", i)}
		rows = append(rows, a, b)
		families = append(families, []string{a.Name, b.Name})
	}
	idx := gene.NewIndex(rows, families, true)
	l := match.NewLoader(idx)
	for i := range pairs {
		l.Load(match.Row{Gene1: namer("a", i), Gene2: namer("b", i), Score: 1e-20})
	}
	cps := l.ChromPairs()
	return cps["Aa1&Bb1"], idx
}

func namer(prefix string, i int) string {
	return prefix + string(rune('0'+i))
}

func TestChainIdentityChain(t *testing.T) {
	cp, _ := buildChromPair(t, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}})
	c := NewChainer(newParams())
	segs := c.Chain(cp)

	assert.Len(t, segs, 1)
	assert.True(t, segs[0].SameStrand)
	assert.Len(t, segs[0].PairIDs, 6)
	assert.Equal(t, float64(6*50), segs[0].Score)
}

func TestChainInversion(t *testing.T) {
	cp, _ := buildChromPair(t, [][2]int{{0, 5}, {1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0}})
	c := NewChainer(newParams())
	segs := c.Chain(cp)

	assert.Len(t, segs, 1)
	assert.False(t, segs[0].SameStrand)
	assert.Len(t, segs[0].PairIDs, 6)
}

func TestChainBelowCutoffIsDropped(t *testing.T) {
	cp, _ := buildChromPair(t, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}})
	c := NewChainer(newParams())
	segs := c.Chain(cp)
	assert.Empty(t, segs)
}

func TestChainEmptyInputProducesNoSegments(t *testing.T) {
	cp := &match.ChromPair{Key: "Aa1&Bb1"}
	c := NewChainer(newParams())
	assert.Empty(t, c.Chain(cp))
}

func TestFilterRepeatsCollapsesSameXBin(t *testing.T) {
	points := make([]Point, 20)
	for i := range points {
		points[i] = Point{PairID: i, X: 10, Y: i, Score: float64(i + 1)}
	}
	out := FilterRepeats(points, 100000)
	assert.Len(t, out, 1)
	assert.Equal(t, 0, out[0].PairID)
}
