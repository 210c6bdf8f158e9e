package cfgparse

import (
	"container/heap"

	"github.com/talent-works/disco-dop/grammar"
)

// labelEntry pairs a label with its current best cost and heap position,
// the same bookkeeping chart.Agenda uses for ChartItem, specialized to a
// bare grammar.Label key since a CFG cell's unary closure never needs a
// discontinuous-span identity: (left, right) is fixed for the whole
// closure run.
type labelEntry struct {
	label grammar.Label
	cost  float64
	index int
}

type labelHeap []*labelEntry

func (h labelHeap) Len() int            { return len(h) }
func (h labelHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h labelHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *labelHeap) Push(x interface{}) {
	e := x.(*labelEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *labelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// labelAgenda is a min-heap over grammar.Label ordered by cost, used to
// drive the per-cell unary closure (spec.md §4.3): seed it with every
// label already finite in the cell, then repeatedly pop the cheapest and
// relax its unary rules, pushing or decrease-keying any label they
// improve.
type labelAgenda struct {
	h       labelHeap
	entries map[grammar.Label]*labelEntry
}

func newLabelAgenda() *labelAgenda {
	return &labelAgenda{h: make(labelHeap, 0), entries: make(map[grammar.Label]*labelEntry)}
}

func (a *labelAgenda) Len() int { return len(a.h) }

func (a *labelAgenda) Contains(label grammar.Label) bool {
	_, ok := a.entries[label]

	return ok
}

// Offer inserts label/cost if unseen, or decrease-keys it if cost
// improves on the queued value. Reports whether it changed anything.
func (a *labelAgenda) Offer(label grammar.Label, cost float64) bool {
	if e, ok := a.entries[label]; ok {
		if cost >= e.cost {
			return false
		}
		e.cost = cost
		heap.Fix(&a.h, e.index)

		return true
	}

	e := &labelEntry{label: label, cost: cost}
	a.entries[label] = e
	heap.Push(&a.h, e)

	return true
}

func (a *labelAgenda) PopMin() (grammar.Label, float64) {
	e := heap.Pop(&a.h).(*labelEntry)
	delete(a.entries, e.label)

	return e.label, e.cost
}
