package pog

import (
	"container/heap"
	"sort"
)

// recordEndpoints marks the first and last master node of a surviving
// fusion chain as a Syn_region's start and end, for the layout pass.
func recordEndpoints(a *Arena, chain []alignMatch, r *SynRegion) {
	if len(chain) == 0 {
		return
	}
	a.addEndpoint(r, chain[0].s, true)
	a.addEndpoint(r, chain[len(chain)-1].s, false)
}

// layoutColumns assigns every Syn_region a non-overlapping column index and
// returns the number of columns used (spec component G). Regions are swept
// in spine order; a region's column is freed as soon as its chain ends and
// is immediately available to the next region that starts, which is why a
// visual block diagram never needs more columns than the maximum number of
// regions simultaneously open at any spine position.
func layoutColumns(a *Arena, spine []NodeIdx) int {
	if len(a.endpoints) == 0 {
		return 0
	}

	pos := make(map[NodeIdx]int, len(spine))
	for i, n := range spine {
		pos[n] = i
	}

	eps := append([]endpointRecord(nil), a.endpoints...)
	sort.SliceStable(eps, func(i, j int) bool {
		pi, pj := pos[eps[i].node], pos[eps[j].node]
		if pi != pj {
			return pi < pj
		}
		return eps[i].region.Score > eps[j].region.Score
	})

	free := &columnHeap{}
	heap.Init(free)
	assigned := make(map[*SynRegion]int)
	nextCol := 0
	maxCols := 0

	for _, e := range eps {
		if e.start {
			var col int
			if free.Len() > 0 {
				col = heap.Pop(free).(int)
			} else {
				col = nextCol
				nextCol++
			}
			assigned[e.region] = col
			e.region.Col = col
			if col+1 > maxCols {
				maxCols = col + 1
			}
		} else {
			if col, ok := assigned[e.region]; ok {
				heap.Push(free, col)
			}
		}
	}
	return maxCols
}

// columnHeap is a min-heap of freed column indices, the Go idiom for the
// original's std::priority_queue<int, vector<int>, greater<int>>.
type columnHeap []int

func (h columnHeap) Len() int            { return len(h) }
func (h columnHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h columnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *columnHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *columnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
