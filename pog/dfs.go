package pog

// reach runs a pruned depth-first search for the best-scoring path from src
// to target along Next edges, starting at matchScore and losing gapScore
// per edge crossed (spec §4.6 F3's graph-DP edge cost). It reports false if
// no path reaches target at all.
//
// Visited state uses the arena's epoch counter rather than a boolean flag
// reset before each call (spec §9 design note): every call mints a fresh
// epoch, so a node's visitEpoch from an earlier, unrelated query never
// reads as "visited" here.
func reach(a *Arena, src, target NodeIdx, matchScore, gapScore float64) (float64, bool) {
	epoch := a.newEpoch()
	best := -matchScore
	dfsBest(a, src, target, matchScore, gapScore, epoch, &best)
	if best == -matchScore {
		return 0, false
	}
	return best, true
}

func dfsBest(a *Arena, s, target NodeIdx, score, gapScore float64, epoch int, best *float64) {
	if s == target {
		if score > *best {
			*best = score
		}
		return
	}
	// Scores only decrease along an edge (gapScore <= 0), so once the
	// running score can no longer beat the incumbent best, no extension of
	// this path can either: prune here.
	if score <= *best {
		return
	}
	a.markVisited(s, epoch)
	for _, next := range a.Node(s).Next {
		if !a.isVisited(next, epoch) {
			dfsBest(a, next, target, score+gapScore, gapScore, epoch, best)
		}
	}
}
