package pog

import "github.com/tanghaibao/mcscan/gene"

// BuildSpine tandem-collapses a position-ordered gene list into a linear
// chain of nodes: consecutive genes sharing a family id become one node's
// gene run (spec §4.6 F1). It allocates every node into a and links them
// left to right; the caller marks the result master or not.
func BuildSpine(a *Arena, genes []*gene.Gene, master bool) []NodeIdx {
	var spine []NodeIdx
	for _, g := range genes {
		if len(spine) > 0 {
			last := a.Node(spine[len(spine)-1])
			if last.Family == g.Family {
				last.Genes = append(last.Genes, g)
				continue
			}
		}
		idx := a.New(g.Family)
		n := a.Node(idx)
		n.Genes = append(n.Genes, g)
		n.IsMaster = master
		spine = append(spine, idx)
	}
	for i := 0; i+1 < len(spine); i++ {
		a.AddNext(spine[i], spine[i+1])
	}
	return spine
}

// reverseSpine reverses node order in place, for partner chains aligned on
// the minus strand (spec §4.6: "a minus-strand region's partner sub-spine
// is walked back to front"). Next edges are rebuilt to match the new order;
// any edges the nodes carried before reversal are discarded, which is safe
// since a freshly built partner spine has no edges but the linear chain
// BuildSpine just installed.
func reverseSpine(a *Arena, spine []NodeIdx) []NodeIdx {
	out := make([]NodeIdx, len(spine))
	for i, n := range spine {
		out[len(spine)-1-i] = n
		a.ClearNext(n)
	}
	for i := 0; i+1 < len(out); i++ {
		a.AddNext(out[i], out[i+1])
	}
	return out
}

// findNode returns the position within spine of the first node (searching
// from start onward) carrying g among its Genes, and whether one was found.
// Used to
// resolve a Segment endpoint gene back to the spine node it belongs to,
// exactly as init_synteny scans ref to find the nodes bounding a, b.
func findNode(a *Arena, spine []NodeIdx, start int, g *gene.Gene) (int, bool) {
	for i := start; i < len(spine); i++ {
		n := a.Node(spine[i])
		for _, gg := range n.Genes {
			if gg == g {
				return i, true
			}
		}
	}
	return 0, false
}
