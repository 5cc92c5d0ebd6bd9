package align

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanghaibao/mcscan/gene"
	"github.com/tanghaibao/mcscan/match"
	"github.com/tanghaibao/mcscan/mcparams"
	"github.com/tanghaibao/mcscan/pog"
	"github.com/tanghaibao/mcscan/synteny"
)

func TestWritePairwiseFormat(t *testing.T) {
	g1 := &gene.Gene{Name: "a0", Chrom: "Aa1"}
	g2 := &gene.Gene{Name: "b0", Chrom: "Bb1"}
	m := &match.Match{Gene1: g1, Gene2: g2, Score: 1e-20, PairID: 0}
	seg := &synteny.Segment{
		PairIDs: []int{0}, S1: g1, T1: g1, S2: g2, T2: g2,
		Score: 50, EValue: 1e-20, ChromPair: "Aa1&Bb1", SameStrand: true,
	}

	var buf bytes.Buffer
	assert.NoError(t, WritePairwise(&buf, []*synteny.Segment{seg}, []*match.Match{m}, ""))
	out := buf.String()
	assert.Contains(t, out, "## Alignment 0: score=50.0 e_value=1e-20 N=1 Aa1&Bb1 plus")
	assert.Contains(t, out, "0-0:\ta0\tb0\t1e-20")
}

func TestWriteAlignsMCLFormat(t *testing.T) {
	g1 := &gene.Gene{Name: "a0"}
	g2 := &gene.Gene{Name: "b0"}
	m := &match.Match{Gene1: g1, Gene2: g2, Score: 2.5, PairID: 0}
	seg := &synteny.Segment{PairIDs: []int{0}}

	var buf bytes.Buffer
	assert.NoError(t, WriteAlignsMCL(&buf, []*synteny.Segment{seg}, []*match.Match{m}))
	assert.Equal(t, "a0\tb0\t2.5\n", buf.String())
}

func TestBannerIncludesDerivedParams(t *testing.T) {
	p := mcparams.NewParameters(false)
	p.Derive()
	b := Banner(&p)
	assert.Contains(t, b, "MATCH_SCORE=50")
	assert.Contains(t, b, "CUTOFF_SCORE=300")
}

func TestWriteBlocksFormat(t *testing.T) {
	var rows []gene.Row
	var families [][]string
	for i := 0; i < 7; i++ {
		aName, bName := fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i)
		rows = append(rows,
			gene.Row{Chrom: "Aa1", Start: i, End: i + 1, Name: aName},
			gene.Row{Chrom: "Bb1", Start: i, End: i + 1, Name: bName})
		families = append(families, []string{aName, bName})
	}
	idx := gene.NewIndex(rows, families, false)

	loader := match.NewLoader(idx)
	for i := 0; i < 7; i++ {
		loader.Load(match.Row{Gene1: fmt.Sprintf("a%d", i), Gene2: fmt.Sprintf("b%d", i), Score: 1e-20})
	}

	params := mcparams.NewParameters(false)
	params.Derive()
	chainer := synteny.NewChainer(&params)
	store := synteny.NewStore()
	for _, cp := range loader.ChromPairs() {
		for _, seg := range chainer.Chain(cp) {
			store.Add(seg)
		}
	}

	weaver := pog.NewWeaver(idx, store, &params)
	view, ok := weaver.Weave("Aa1")
	assert.True(t, ok)

	var buf bytes.Buffer
	assert.NoError(t, WriteBlocks(&buf, []*pog.View{view}, Banner(&params)))
	out := buf.String()
	assert.Contains(t, out, "## View 0: pivot Aa1")
	assert.Contains(t, out, "0-0:\ta0\tb0")
}
