package pog

import (
	"github.com/tanghaibao/mcscan/gene"
	"github.com/tanghaibao/mcscan/mcparams"
	"github.com/tanghaibao/mcscan/synteny"
)

// Weaver builds one partial-order-graph View per reference chromosome
// (spec component F), then lays out its columns (component G).
type Weaver struct {
	idx    *gene.Index
	store  *synteny.Store
	params *mcparams.Parameters
}

// NewWeaver binds a Weaver to the gene index and chain store it weaves.
func NewWeaver(idx *gene.Index, store *synteny.Store, params *mcparams.Parameters) *Weaver {
	return &Weaver{idx: idx, store: store, params: params}
}

// View is the finished partial-order graph for one reference chromosome:
// its final spine order (master nodes plus every branch fused into them)
// and the column count the layout pass assigned.
type View struct {
	Chrom string
	Arena *Arena
	Spine []NodeIdx
	Cols  int
}

// Weave builds the View for one reference chromosome, or reports false if
// the chromosome has fewer mapped genes than MatchSize and is skipped
// entirely (spec §4.6).
func (w *Weaver) Weave(chrom string) (*View, bool) {
	mapped := w.idx.MappedGenesOn(chrom)
	if len(mapped) < w.params.MatchSize {
		return nil, false
	}

	a := NewArena()
	spine := BuildSpine(a, mapped, true)

	for _, r := range gatherRegions(w.store, chrom) {
		if skipSelfGenome(r, w.params.InSynteny) {
			continue
		}
		spine = w.fuseRegion(a, spine, r)
	}

	cols := layoutColumns(a, spine)
	return &View{Chrom: chrom, Arena: a, Spine: spine, Cols: cols}, true
}

// fuseRegion runs F3 for one Syn_region: it locates the master sub-spine the
// region's master endpoints bound, builds a fresh partner spine, finds the
// best-scoring alignment between the two via the graph DP below, and
// splices the surviving partner branch into spine. A region contributing no
// usable alignment (endpoints not found, no shared family at all, or best
// score under CutoffScore) leaves spine unchanged.
func (w *Weaver) fuseRegion(a *Arena, spine []NodeIdx, r *SynRegion) []NodeIdx {
	ga, gb := r.masterRange()
	start, ok := findNode(a, spine, 0, ga)
	if !ok {
		return spine
	}
	end, ok := findNode(a, spine, start, gb)
	if !ok {
		return spine
	}
	masterSub := spine[start : end+1]

	pa, pb, partnerChrom := r.partnerRange()
	partnerGenes := w.idx.MappedGenesOn(partnerChrom)
	partnerSpine := BuildSpine(a, partnerGenes, false)
	if !r.Seg.SameStrand {
		partnerSpine = reverseSpine(a, partnerSpine)
	}

	pStart, ok := findNode(a, partnerSpine, 0, pa)
	if !ok {
		return spine
	}
	pEnd, ok := findNode(a, partnerSpine, pStart, pb)
	if !ok {
		return spine
	}
	partnerSub := partnerSpine[pStart : pEnd+1]
	for _, n := range partnerSub {
		a.Node(n).Region = r
	}

	matches := buildMatches(a, masterSub, partnerSub)
	if len(matches) == 0 {
		return spine
	}

	best, from, ok := w.alignMatches(a, matches)
	if !ok {
		return spine
	}

	track := tracebackMatches(from, best)
	chain := make([]alignMatch, len(track))
	for i, idx := range track {
		chain[i] = matches[idx]
	}
	return spliceChain(a, spine, chain, partnerSub, r)
}

// alignMatch is one candidate node pairing shared by the master and partner
// sub-spines: equal family id, at sPos/tPos within their respective slices.
type alignMatch struct {
	s, t       NodeIdx
	sPos, tPos int
}

func buildMatches(a *Arena, masterSub, partnerSub []NodeIdx) []alignMatch {
	var out []alignMatch
	for i, ms := range masterSub {
		family := a.Node(ms).Family
		for j, pt := range partnerSub {
			if a.Node(pt).Family == family {
				out = append(out, alignMatch{s: ms, sPos: i, t: pt, tPos: j})
			}
		}
	}
	return out
}

// alignMatches runs the sparse DP over candidate node pairings: the score
// of extending match aa into match bb is the lower (worse) of the two
// DFS-derived reachability scores between their master nodes and between
// their partner nodes (spec §4.6 F3). Matches are produced by buildMatches in
// master-position-ascending order, so once the master-side reachability
// check fails for a fixed aa it will fail for every later bb too (their
// master nodes are no earlier in the spine); that permits the same break,
// rather than continue, the original graph DP used there. The partner axis
// carries no such guarantee (a later bb may have an earlier partner
// position, e.g. under an inversion already accounted for by the spine
// reversal), so a partner-side failure only skips that one bb.
func (w *Weaver) alignMatches(a *Arena, matches []alignMatch) (best int, from []int, ok bool) {
	n := len(matches)
	scores := make([]float64, n)
	from = make([]int, n)
	matchScore := float64(w.params.MatchScore)
	gapScore := float64(w.params.GapScore)
	for i := range matches {
		scores[i] = matchScore
		from[i] = -1
	}

	for aa := 0; aa < n; aa++ {
		for bb := aa + 1; bb < n; bb++ {
			m1, m2 := matches[aa], matches[bb]
			if m1.s == m2.s || m1.t == m2.t {
				continue
			}
			delMaster, okMaster := reach(a, m1.s, m2.s, matchScore, gapScore)
			if !okMaster {
				break
			}
			delPartner, okPartner := reach(a, m1.t, m2.t, matchScore, gapScore)
			if !okPartner {
				continue
			}
			minDel := delMaster
			if delPartner < minDel {
				minDel = delPartner
			}
			candidate := scores[aa] + minDel
			if candidate > scores[bb] {
				scores[bb] = candidate
				from[bb] = aa
			}
		}
	}

	best = -1
	cutoff := float64(w.params.CutoffScore)
	for i, s := range scores {
		if s < cutoff {
			continue
		}
		if best == -1 || s > scores[best] {
			best = i
		}
	}
	return best, from, best != -1
}

func tracebackMatches(from []int, end int) []int {
	var chain []int
	for i := end; i != -1; i = from[i] {
		chain = append(chain, i)
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain
}

// spliceChain inserts the partner material between consecutive matched
// pairs into spine, right after each pair's master node, and records every
// matched pair as a fusion child of its master node (spec §4.6 F3's
// "splice the partner subpath into the master spine" and "repair edges").
func spliceChain(a *Arena, spine []NodeIdx, chain []alignMatch, partnerSub []NodeIdx, r *SynRegion) []NodeIdx {
	insertions := make(map[NodeIdx][]NodeIdx)

	for i := 0; i+1 < len(chain); i++ {
		m1, m2 := chain[i], chain[i+1]
		between := partnerSub[m1.tPos+1 : m2.tPos]
		if len(between) > 0 {
			a.AddNext(m1.s, between[0])
			a.ClearNext(between[len(between)-1])
			a.AddNext(between[len(between)-1], m2.s)
			insertions[m1.s] = append(insertions[m1.s], between...)
		} else {
			a.AddNext(m1.s, m2.s)
		}
	}
	for _, m := range chain {
		a.AddFusion(m.s, m.t)
	}
	recordEndpoints(a, chain, r)

	newSpine := make([]NodeIdx, 0, len(spine)+len(partnerSub))
	for _, n := range spine {
		newSpine = append(newSpine, n)
		if ins, ok := insertions[n]; ok {
			newSpine = append(newSpine, ins...)
		}
	}
	return newSpine
}
