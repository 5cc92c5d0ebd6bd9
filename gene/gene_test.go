package gene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bedRows() []Row {
	return []Row{
		{Chrom: "Aa1", Start: 300, End: 310, Name: "Aa1g3"},
		{Chrom: "Aa1", Start: 100, End: 110, Name: "Aa1g1"},
		{Chrom: "Aa1", Start: 200, End: 210, Name: "Aa1g2"},
		{Chrom: "Bb1", Start: 50, End: 60, Name: "Bb1g1"},
	}
}

func TestNewIndexRankMode(t *testing.T) {
	idx := NewIndex(bedRows(), nil, false)

	g1, ok := idx.FindGene("Aa1g1")
	assert.True(t, ok)
	assert.Equal(t, 0, g1.Pos)

	g2, _ := idx.FindGene("Aa1g2")
	assert.Equal(t, 1, g2.Pos)

	g3, _ := idx.FindGene("Aa1g3")
	assert.Equal(t, 2, g3.Pos)

	genes := idx.GenesOn("Aa1")
	assert.Equal(t, []string{"Aa1g1", "Aa1g2", "Aa1g3"},
		[]string{genes[0].Name, genes[1].Name, genes[2].Name})
}

func TestNewIndexBPMode(t *testing.T) {
	idx := NewIndex(bedRows(), nil, true)
	g1, _ := idx.FindGene("Aa1g1")
	assert.Equal(t, 100, g1.Pos)
}

func TestFamilyAssignment(t *testing.T) {
	families := [][]string{
		{"Aa1g1", "Bb1g1"},
		{"Aa1g2"},
	}
	idx := NewIndex(bedRows(), families, false)

	g1, _ := idx.FindGene("Aa1g1")
	b1, _ := idx.FindGene("Bb1g1")
	g2, _ := idx.FindGene("Aa1g2")
	g3, _ := idx.FindGene("Aa1g3")

	assert.Equal(t, 0, g1.Family)
	assert.Equal(t, 0, b1.Family)
	assert.Equal(t, 1, g2.Family)

	// g3 never appears in any cluster line; it gets a sentinel family id
	// that cannot equal any other gene's, including another unclustered one.
	assert.NotEqual(t, g3.Family, g1.Family)
	assert.NotEqual(t, g3.Family, g2.Family)
	assert.Less(t, g3.Family, 0)
}

func TestSentinelFamiliesAreAllDistinct(t *testing.T) {
	idx := NewIndex(bedRows(), nil, false)
	seen := map[int]bool{}
	for _, name := range []string{"Aa1g1", "Aa1g2", "Aa1g3", "Bb1g1"} {
		g, _ := idx.FindGene(name)
		assert.False(t, seen[g.Family], "family id %d reused", g.Family)
		seen[g.Family] = true
	}
}

func TestChromLabelsPreservesLoadOrder(t *testing.T) {
	idx := NewIndex(bedRows(), nil, false)
	assert.Equal(t, []string{"Aa1", "Bb1"}, idx.ChromLabels())
}

func TestLessOrdering(t *testing.T) {
	a := &Gene{Chrom: "Aa1", Pos: 1}
	b := &Gene{Chrom: "Aa1", Pos: 2}
	c := &Gene{Chrom: "Bb1", Pos: 0}
	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
	assert.True(t, Less(b, c))
}
