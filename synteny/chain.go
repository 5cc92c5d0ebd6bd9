package synteny

import (
	"sort"

	"github.com/tanghaibao/mcscan/match"
	"github.com/tanghaibao/mcscan/mcparams"
)

// Chainer extracts maximal colinear chains from the matches of one
// chromosome pair under a gap-penalized scoring model (spec component D).
type Chainer struct {
	params *mcparams.Parameters
}

// NewChainer binds a Chainer to a Parameters value.
func NewChainer(params *mcparams.Parameters) *Chainer {
	return &Chainer{params: params}
}

// Chain runs the repeat filter then the plus- and minus-strand chaining
// passes over one chromosome pair's matches, returning every Segment that
// scores at least CutoffScore. An empty or fully-masked input yields no
// Segments; that is the expected outcome, not an error (spec §4.4).
func (c *Chainer) Chain(cp *match.ChromPair) []*Segment {
	if len(cp.Matches) == 0 {
		return nil
	}

	byPairID := make(map[int]*match.Match, len(cp.Matches))
	points := make([]Point, 0, len(cp.Matches))
	for _, m := range cp.Matches {
		byPairID[m.PairID] = m
		points = append(points, Point{
			PairID: m.PairID,
			X:      m.Gene1.Pos,
			Y:      m.Gene2.Pos,
			Score:  m.Score,
		})
	}

	points = FilterRepeats(points, c.params.OverlapWindow)

	var segments []*Segment
	plusChains, remaining := c.extractAll(points, true)
	minusChains, _ := c.extractAll(remaining, false)

	for _, ch := range plusChains {
		segments = append(segments, c.toSegment(ch, byPairID, cp.Key, true))
	}
	for _, ch := range minusChains {
		segments = append(segments, c.toSegment(ch, byPairID, cp.Key, false))
	}
	return segments
}

// chainResult is an extracted chain: the points composing it, in
// x-ascending order, and its DP score.
type chainResult struct {
	points []Point
	score  float64
}

// extractAll repeatedly finds the single best-scoring chain in one strand
// direction, records it, and masks its points out, until no remaining chain
// reaches CutoffScore. Every round picks the highest-scoring endpoint among
// all candidates clearing CutoffScore, not merely the first one found, so a
// short sub-chain never gets masked ahead of the longer chain that extends
// it (spec §4.4). It returns the chains found and the points that were
// never used by any of them (candidates for the other strand's pass).
func (c *Chainer) extractAll(points []Point, plus bool) ([]chainResult, []Point) {
	active := append([]Point(nil), points...)
	var chains []chainResult

	for {
		if len(active) == 0 {
			break
		}
		sort.SliceStable(active, func(i, j int) bool {
			if active[i].X != active[j].X {
				return active[i].X < active[j].X
			}
			return active[i].Y < active[j].Y
		})

		dp, from := c.runDP(active, plus)

		best := -1
		for i, s := range dp {
			if s < float64(c.params.CutoffScore) {
				continue
			}
			if best == -1 || betterEnd(dp, active, from, i, best) {
				best = i
			}
		}
		if best == -1 {
			break
		}

		chainIdx := traceback(from, best)
		chainPts := make([]Point, len(chainIdx))
		for i, idx := range chainIdx {
			chainPts[i] = active[idx]
		}
		chains = append(chains, chainResult{points: chainPts, score: dp[best]})

		used := make(map[int]bool, len(chainIdx))
		for _, idx := range chainIdx {
			used[active[idx].PairID] = true
		}
		active = filterOutUsed(active, used)
	}
	return chains, active
}

// betterEnd reports whether candidate endpoint i should be preferred over
// the current best j: rank by dp score descending first (spec §4.4's
// "finds all maximal colinear chains ... traceback from every local-maximum
// endpoint" means distinct local maxima are never ranked by end position),
// and only fall back to the documented tie-break — earlier end-x, then
// smaller y-span between the endpoint and its own chain's start — when the
// scores are equal.
func betterEnd(dp []float64, points []Point, from []int, i, j int) bool {
	if dp[i] != dp[j] {
		return dp[i] > dp[j]
	}
	if points[i].X != points[j].X {
		return points[i].X < points[j].X
	}
	return ySpan(points, from, i) < ySpan(points, from, j)
}

// ySpan is the |Δy| between a chain's endpoint and its own start, found by
// walking the DP back-pointers to the root.
func ySpan(points []Point, from []int, end int) int {
	start := end
	for from[start] != -1 {
		start = from[start]
	}
	return abs(points[end].Y - points[start].Y)
}

func filterOutUsed(points []Point, used map[int]bool) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if !used[p.PairID] {
			out = append(out, p)
		}
	}
	return out
}

// runDP computes, for every point in x-ascending order, the best score of
// any chain ending there and a back-pointer to its predecessor (-1 if none).
func (c *Chainer) runDP(points []Point, plus bool) ([]float64, []int) {
	n := len(points)
	dp := make([]float64, n)
	from := make([]int, n)
	matchScore := float64(c.params.MatchScore)
	gapScore := float64(c.params.GapScore)

	for i := 0; i < n; i++ {
		dp[i] = matchScore
		from[i] = -1
		p := points[i]

		for j := i - 1; j >= 0; j-- {
			q := points[j]
			if p.X-q.X > c.params.ExtensionDist {
				break // points are x-sorted; nothing further back can be in range
			}
			if p.X == q.X {
				continue
			}
			if plus {
				if q.Y >= p.Y {
					continue
				}
			} else {
				if q.Y <= p.Y {
					continue
				}
			}
			if abs(p.Y-q.Y) > c.params.ExtensionDist {
				continue
			}

			gap := c.params.SumGaps(p.X-q.X, abs(p.Y-q.Y))
			candidate := dp[j] + matchScore + gapScore*float64(gap)
			if candidate > dp[i] {
				dp[i] = candidate
				from[i] = j
			}
		}
	}
	return dp, from
}

func traceback(from []int, end int) []int {
	var chain []int
	for i := end; i != -1; i = from[i] {
		chain = append(chain, i)
	}
	// reverse into x-ascending order
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain
}

// toSegment builds a Segment from an extracted chain's ordered points.
func (c *Chainer) toSegment(ch chainResult, byPairID map[int]*match.Match, chromPair string, sameStrand bool) *Segment {
	pairIDs := make([]int, len(ch.points))
	for i, p := range ch.points {
		pairIDs[i] = p.PairID
	}
	first := byPairID[ch.points[0].PairID]
	last := byPairID[ch.points[len(ch.points)-1].PairID]

	eValue := evalue(ch.points, byPairID)

	return &Segment{
		PairIDs:    pairIDs,
		S1:         first.Gene1,
		T1:         last.Gene1,
		S2:         first.Gene2,
		T2:         last.Gene2,
		Score:      ch.score,
		EValue:     eValue,
		ChromPair:  chromPair,
		SameStrand: sameStrand,
	}
}

// evalue combines each anchor's own similarity score into a length-
// normalized figure. The original never documents this formula in a way
// clients can rely on (spec §4.4, §9 open question); this reimplementation
// preserves a monotonic, deterministic value without assigning it semantic
// meaning.
func evalue(points []Point, byPairID map[int]*match.Match) float64 {
	product := 1.0
	for _, p := range points {
		s := byPairID[p.PairID].Score
		if s <= 0 {
			s = 1e-300
		}
		product *= s
	}
	return product / float64(len(points))
}
