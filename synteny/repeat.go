package synteny

import "sort"

// Point is one candidate anchor for the chainer: a Match projected onto the
// (x,y) plane of a chromosome pair, x on chrA and y on chrB.
type Point struct {
	PairID int
	X, Y   int
	Score  float64
}

// FilterRepeats collapses locally repetitive points on both axes. It is run
// twice, once per axis, the way the original chains filter_matches_x then
// filter_matches_y: the x-axis pass removes vertically stacked repeats, the
// y-axis pass removes horizontally stacked ones.
//
// A run of consecutive (primary-sorted) points stays in the same bin only
// while the primary coordinate is unchanged and the secondary coordinate
// hasn't drifted more than overlapWindow from the previous point; any
// change of primary coordinate always starts a new bin, even if the
// secondary coordinate barely moved. This matches filter_matches_x/y's
// flush condition exactly (`prev.x != it.x || it.y-prev.y > window`) rather
// than the looser either/or grouping a literal reading of "share the same
// coordinate or stay within the window" might suggest.
func FilterRepeats(points []Point, overlapWindow int) []Point {
	x := filterAxis(points, overlapWindow,
		func(p Point) int { return p.X },
		func(p Point) int { return p.Y })
	return filterAxis(x, overlapWindow,
		func(p Point) int { return p.Y },
		func(p Point) int { return p.X })
}

func filterAxis(points []Point, window int, primary, secondary func(Point) int) []Point {
	if len(points) == 0 {
		return nil
	}
	sorted := append([]Point(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := primary(sorted[i]), primary(sorted[j])
		if pi != pj {
			return pi < pj
		}
		return secondary(sorted[i]) < secondary(sorted[j])
	})

	var out []Point
	binStart := 0
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		flush := primary(cur) != primary(prev) || secondary(cur)-secondary(prev) > window
		if flush {
			out = append(out, bestOfBin(sorted[binStart:i]))
			binStart = i
		}
	}
	out = append(out, bestOfBin(sorted[binStart:]))
	return out
}

// bestOfBin returns the point with the smallest (strongest) score in a bin.
func bestOfBin(bin []Point) Point {
	best := bin[0]
	for _, p := range bin[1:] {
		if p.Score < best.Score {
			best = p
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
