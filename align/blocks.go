package align

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tanghaibao/mcscan/gene"
	"github.com/tanghaibao/mcscan/pog"
)

// WriteBlocks writes the parameter banner followed by one view per
// qualifying reference chromosome, in the order given (spec §4.8; callers
// pass views in reference-chromosome load order per spec §5).
func WriteBlocks(w io.Writer, views []*pog.View, params string) error {
	if _, err := io.WriteString(w, params); err != nil {
		return err
	}
	for i, v := range views {
		if err := writeView(w, i, v); err != nil {
			return err
		}
	}
	return nil
}

// writeView renders one reference chromosome's spine: a header line, one
// row per spine node (master gene set plus one cell per layout column), and
// a trailing blank line closing the view.
func writeView(w io.Writer, blockIdx int, v *pog.View) error {
	if _, err := fmt.Fprintf(w, "## View %d: pivot %s\n", blockIdx, v.Chrom); err != nil {
		return err
	}
	for row, idx := range v.Spine {
		node := v.Arena.Node(idx)
		cols := make([]string, v.Cols)
		for i := range cols {
			cols[i] = "."
		}

		own := "."
		if node.IsMaster {
			own = geneSet(node.Genes)
		} else if node.Region != nil {
			cols[node.Region.Col] = geneSet(node.Genes)
		}
		// A master node's directly matched (not spliced) fusion children
		// still occupy a column at this row, even though they are not
		// separate spine entries (spec §4.8's block row carries both the
		// master set and every column's content for that spine position).
		for _, fc := range node.Fusion {
			child := v.Arena.Node(fc)
			if child.Region != nil {
				cols[child.Region.Col] = geneSet(child.Genes)
			}
		}

		line := fmt.Sprintf("%d-%d:\t%s", blockIdx, row, own)
		for _, c := range cols {
			line += "\t" + c
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// geneSet renders a node's gene set for one block cell: "." when empty,
// else the names joined by ";" in sorted order for deterministic output
// (spec §4.8, and spec §8's "byte-identical on repeated runs" property).
func geneSet(genes []*gene.Gene) string {
	if len(genes) == 0 {
		return "."
	}
	names := make([]string, len(genes))
	for i, g := range genes {
		names[i] = g.Name
	}
	sort.Strings(names)
	return strings.Join(names, ";")
}
