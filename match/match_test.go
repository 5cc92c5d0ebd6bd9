package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanghaibao/mcscan/gene"
)

func testIndex() *gene.Index {
	rows := []gene.Row{
		{Chrom: "Aa1", Start: 0, End: 1, Name: "a1"},
		{Chrom: "Aa1", Start: 1, End: 2, Name: "a2"},
		{Chrom: "Bb1", Start: 0, End: 1, Name: "b1"},
		{Chrom: "Bb1", Start: 1, End: 2, Name: "b2"},
	}
	families := [][]string{
		{"a1", "b1"},
		{"a2", "b2"},
	}
	return gene.NewIndex(rows, families, true)
}

func TestLoadNormalizesOrder(t *testing.T) {
	idx := testIndex()
	l := NewLoader(idx)
	l.Load(Row{Gene1: "b1", Gene2: "a1", Score: 1e-10})

	assert.Len(t, l.Matches(), 1)
	m := l.Matches()[0]
	assert.Equal(t, "a1", m.Gene1.Name)
	assert.Equal(t, "b1", m.Gene2.Name)
	assert.Equal(t, "Aa1&Bb1", m.ChromPair)
}

func TestLoadDropsSelfHit(t *testing.T) {
	idx := testIndex()
	l := NewLoader(idx)
	l.Load(Row{Gene1: "a1", Gene2: "a1", Score: 1e-10})
	assert.Empty(t, l.Matches())
}

func TestLoadDropsUnknownGene(t *testing.T) {
	idx := testIndex()
	l := NewLoader(idx)
	l.Load(Row{Gene1: "a1", Gene2: "ghost", Score: 1e-10})
	assert.Empty(t, l.Matches())
}

func TestLoadDropsFamilyMismatch(t *testing.T) {
	idx := testIndex()
	l := NewLoader(idx)
	l.Load(Row{Gene1: "a1", Gene2: "b2", Score: 1e-10})
	assert.Empty(t, l.Matches())
}

func TestChromPairTally(t *testing.T) {
	idx := testIndex()
	l := NewLoader(idx)
	l.Load(Row{Gene1: "a1", Gene2: "b1", Score: 1e-10})
	l.Load(Row{Gene1: "a2", Gene2: "b2", Score: 1e-8})

	cps := l.ChromPairs()
	assert.Len(t, cps, 1)
	assert.Len(t, cps["Aa1&Bb1"].Matches, 2)
}

func TestSameGenome(t *testing.T) {
	assert.True(t, SameGenome("Vv1&Vv14"))
	assert.False(t, SameGenome("Aa1&Bb1"))
}
