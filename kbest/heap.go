package kbest

import "github.com/talent-works/disco-dop/chart"

// candEntry pairs a candidate RankedEdge with its already-computed total
// cost, the sort key for candHeap.
type candEntry struct {
	re   chart.RankedEdge
	cost float64
}

// candHeap is a plain container/heap min-heap ordered by cost. Unlike
// chart.Agenda, no decrease-key is needed: the lazy algorithm pushes each
// RankedEdge at most once (guarded by the explored set), so entries are
// never revised after insertion.
type candHeap []candEntry

func (h candHeap) Len() int           { return len(h) }
func (h candHeap) Less(i, j int) bool { return h[i].cost < h[j].cost }
func (h candHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *candHeap) Push(x interface{}) {
	*h = append(*h, x.(candEntry))
}

func (h *candHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
