// Package pog implements the partial-order-graph weaver and block layout
// (spec components F, G): for each reference chromosome, successively merge
// the chains that touch it into one partially ordered graph of
// tandem-collapsed gene clusters, then assign non-overlapping column
// indices to the fused chains.
//
// Nodes live in an Arena: a contiguous slice indexed by NodeIdx rather than
// the original's individually heap-allocated, manually pooled POG_node*
// pointers (spec §9's design note). An Arena's lifetime is exactly one
// reference chromosome; Weave allocates a fresh one per call, and the View
// it returns keeps that Arena for the block emitter to read.
package pog

import "github.com/tanghaibao/mcscan/gene"

// NodeIdx indexes a Node within an Arena. The zero value is a valid index
// (arena slot 0); use invalidNode (-1) to represent "no node".
type NodeIdx int

const invalidNode NodeIdx = -1

// Node is a vertex of the partial-order graph: a tandem-collapsed run of
// genes of one family from a single chromosome. A master node belongs to
// the reference spine from the start (IsMaster, Region nil); a
// fusion-inserted node carries genes spliced in from an aligned partner
// chromosome and keeps a back-pointer to the Syn_region responsible.
type Node struct {
	Family   int
	Genes    []*gene.Gene
	IsMaster bool
	Region   *SynRegion
	Fusion   []NodeIdx
	Next     []NodeIdx

	visitEpoch int
}

// Arena owns every Node created while weaving one reference chromosome.
type Arena struct {
	nodes     []Node
	epoch     int
	endpoints []endpointRecord
}

// endpointRecord marks a fused chain's start or end node, for the layout
// pass to sweep over (spec component G).
type endpointRecord struct {
	region *SynRegion
	node   NodeIdx
	start  bool
}

func (a *Arena) addEndpoint(region *SynRegion, node NodeIdx, start bool) {
	a.endpoints = append(a.endpoints, endpointRecord{region: region, node: node, start: start})
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Node returns a pointer into the arena's backing slice; valid only until
// the next New call (which may grow and reallocate the slice).
func (a *Arena) Node(i NodeIdx) *Node {
	return &a.nodes[i]
}

// New allocates a node with the given family id and returns its index.
func (a *Arena) New(family int) NodeIdx {
	a.nodes = append(a.nodes, Node{Family: family})
	return NodeIdx(len(a.nodes) - 1)
}

// AddNext links from->to if not already linked.
func (a *Arena) AddNext(from, to NodeIdx) {
	n := a.Node(from)
	for _, existing := range n.Next {
		if existing == to {
			return
		}
	}
	n.Next = append(n.Next, to)
}

// ClearNext removes every outgoing edge of a node.
func (a *Arena) ClearNext(n NodeIdx) {
	a.Node(n).Next = nil
}

// AddFusion records that master carries partner as a fusion child.
func (a *Arena) AddFusion(master, partner NodeIdx) {
	n := a.Node(master)
	for _, existing := range n.Fusion {
		if existing == partner {
			return
		}
	}
	n.Fusion = append(n.Fusion, partner)
}

// newEpoch returns a fresh epoch token. Comparing node.visitEpoch against
// the token in use by the current DFS query stands in for the original's
// reset-before-use boolean visited flag (spec §9 design note): each query
// gets its own token, so a node visited by a stale query never reads as
// visited for a new one, with no explicit reset pass required.
func (a *Arena) newEpoch() int {
	a.epoch++
	return a.epoch
}

func (a *Arena) markVisited(n NodeIdx, epoch int) {
	a.nodes[n].visitEpoch = epoch
}

func (a *Arena) isVisited(n NodeIdx, epoch int) bool {
	return a.nodes[n].visitEpoch == epoch
}
