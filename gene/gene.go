// Package gene holds the gene coordinate table and the family partition,
// and answers name/chromosome lookups for the rest of the pipeline. It is
// built once from a BED-style coordinate table and an MCL-style cluster
// file and is read-only afterwards.
package gene

import "sort"

// Gene is immutable once the Index that owns it has finished loading.
type Gene struct {
	ID     int
	Name   string
	Chrom  string
	Pos    int
	Family int
}

// Less gives genes a strict weak ordering by (chromosome, position), the
// comparator the original's Gene_feat::operator< botched (it compared the
// two fields asymmetrically: `(mol==g.mol && mid<g.mid) || mol<g.mol`, which
// is not even transitive once mol ties break the wrong way). NewIndex does
// not call Less: it sorts its Row values directly by the same (chromosome,
// start) key.
func Less(a, b *Gene) bool {
	if a.Chrom != b.Chrom {
		return a.Chrom < b.Chrom
	}
	return a.Pos < b.Pos
}

// Mapped reports whether a gene was assigned to a real family cluster
// rather than a synthetic singleton (sentinel) family. Only mapped genes
// enter a chromosome's partial-order graph (spec §4.6's F1 tandem collapse
// operates on the family partition, not the raw coordinate table).
func (g *Gene) Mapped() bool {
	return g.Family >= 0
}

// Chromosome is a label plus its genes in position order.
type Chromosome struct {
	Label string
	Genes []*Gene
}

// Row is one coordinate-table record, already tokenized by the BED reader.
type Row struct {
	Chrom string
	Start int
	End   int
	Name  string
}

// Index maps gene names to Genes and chromosome labels to Chromosomes. Build
// it once with NewIndex and never mutate the returned value afterwards.
type Index struct {
	genes      map[string]*Gene
	chroms     map[string]*Chromosome
	chromOrder []string
	nextID     int
	nextFamily int // sentinel family-id counter, counts down from -1
}

// NewIndex builds the gene table from BED rows and assigns family ids from
// MCL cluster lines. If useBP is false, each gene's position is overwritten
// with its zero-based rank within its chromosome; otherwise the BED start
// coordinate is kept as position.
//
// families is a pre-tokenized MCL file: families[i] is the set of gene
// names on cluster line i (family id i). Genes absent from every cluster
// line receive a unique negative family id that can never equal another
// gene's, per spec.
func NewIndex(rows []Row, families [][]string, useBP bool) *Index {
	idx := &Index{
		genes:      make(map[string]*Gene, len(rows)),
		chroms:     make(map[string]*Chromosome),
		nextFamily: -1,
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Chrom != rows[j].Chrom {
			return rows[i].Chrom < rows[j].Chrom
		}
		return rows[i].Start < rows[j].Start
	})

	for _, r := range rows {
		g := &Gene{
			ID:     idx.nextID,
			Name:   r.Name,
			Chrom:  r.Chrom,
			Pos:    r.Start,
			Family: idx.sentinelFamily(),
		}
		idx.nextID++
		idx.genes[r.Name] = g
		c, ok := idx.chroms[r.Chrom]
		if !ok {
			c = &Chromosome{Label: r.Chrom}
			idx.chroms[r.Chrom] = c
			idx.chromOrder = append(idx.chromOrder, r.Chrom)
		}
		c.Genes = append(c.Genes, g)
	}

	if !useBP {
		for _, c := range idx.chroms {
			for rank, g := range c.Genes {
				g.Pos = rank
			}
		}
	}

	for familyID, names := range families {
		for _, name := range names {
			if g, ok := idx.genes[name]; ok {
				g.Family = familyID
			}
		}
	}

	return idx
}

func (idx *Index) sentinelFamily() int {
	f := idx.nextFamily
	idx.nextFamily--
	return f
}

// FindGene looks up a gene by name.
func (idx *Index) FindGene(name string) (*Gene, bool) {
	g, ok := idx.genes[name]
	return g, ok
}

// GenesOn returns the ordered gene slice of a chromosome, or nil if unknown.
func (idx *Index) GenesOn(chrom string) []*Gene {
	c, ok := idx.chroms[chrom]
	if !ok {
		return nil
	}
	return c.Genes
}

// Chromosome looks up a chromosome by label.
func (idx *Index) Chromosome(label string) (*Chromosome, bool) {
	c, ok := idx.chroms[label]
	return c, ok
}

// MappedGenesOn returns the genes of a chromosome that carry a real family
// id, in position order. The POG weaver builds its spine from this set, not
// from the full coordinate table (spec §4.6).
func (idx *Index) MappedGenesOn(chrom string) []*Gene {
	c, ok := idx.chroms[chrom]
	if !ok {
		return nil
	}
	out := make([]*Gene, 0, len(c.Genes))
	for _, g := range c.Genes {
		if g.Mapped() {
			out = append(out, g)
		}
	}
	return out
}

// ChromLabels returns every chromosome label in load order, which is also
// the order blocks are emitted in (spec §5). NewIndex sorts rows by
// chromosome before loading them, so this is ascending label order, not the
// order labels first appear in the BED input.
func (idx *Index) ChromLabels() []string {
	out := make([]string, len(idx.chromOrder))
	copy(out, idx.chromOrder)
	return out
}

// NumGenes returns the total number of genes loaded.
func (idx *Index) NumGenes() int {
	return len(idx.genes)
}
