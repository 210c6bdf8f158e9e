package chart

import "container/heap"

// agendaEntry pairs a ChartItem with the best Edge found for it so far and
// its current position in the backing heap slice.
type agendaEntry struct {
	item  ChartItem
	edge  Edge
	index int // position in the heap slice; maintained by heapSlice.Swap
}

// heapSlice implements container/heap.Interface, ordered by ascending
// Edge.Score, exactly like lvlath/dijkstra's nodePQ and
// lvlath/prim_kruskal's edgePQ, extended with index bookkeeping so Agenda
// can expose O(log n) decrease-key instead of the lazy duplicate-push
// pattern those two use.
type heapSlice []*agendaEntry

func (h heapSlice) Len() int            { return len(h) }
func (h heapSlice) Less(i, j int) bool  { return h[i].edge.Score < h[j].edge.Score }
func (h heapSlice) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *heapSlice) Push(x interface{}) {
	e := x.(*agendaEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *heapSlice) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// Agenda is a min-heap of chart items ordered by Edge.Score, with O(1)
// membership and O(log n) insert/decrease-key. It backs the main loop of
// lcfrs.Parse; cfgparse's per-cell unary closure uses its own label-keyed
// agenda instead.
type Agenda struct {
	h       heapSlice
	entries map[ChartItem]*agendaEntry
}

// NewAgenda returns an empty Agenda.
func NewAgenda() *Agenda {
	return &Agenda{
		h:       make(heapSlice, 0),
		entries: make(map[ChartItem]*agendaEntry),
	}
}

// Len returns the number of items currently queued.
func (a *Agenda) Len() int { return len(a.h) }

// Contains reports whether item is currently queued (not yet popped).
func (a *Agenda) Contains(item ChartItem) bool {
	_, ok := a.entries[item]

	return ok
}

// Peek returns the edge currently queued for item, if any.
func (a *Agenda) Peek(item ChartItem) (Edge, bool) {
	e, ok := a.entries[item]
	if !ok {
		return Edge{}, false
	}

	return e.edge, true
}

// Insert adds a new item/edge pair. The caller must ensure item is not
// already queued (use SetIfBetter or Replace to update an existing entry).
func (a *Agenda) Insert(item ChartItem, edge Edge) {
	e := &agendaEntry{item: item, edge: edge}
	a.entries[item] = e
	heap.Push(&a.h, e)
}

// Replace overwrites the queued edge for item with a strictly-better one and
// fixes the heap invariant. The caller must ensure item is already queued.
func (a *Agenda) Replace(item ChartItem, edge Edge) {
	e := a.entries[item]
	e.edge = edge
	heap.Fix(&a.h, e.index)
}

// SetIfBetter replaces the queued edge for item only if the candidate's
// Score improves on the queued one. Reports whether it replaced.
func (a *Agenda) SetIfBetter(item ChartItem, edge Edge) bool {
	e := a.entries[item]
	if edge.Score >= e.edge.Score {
		return false
	}
	e.edge = edge
	heap.Fix(&a.h, e.index)

	return true
}

// PopMin removes and returns the item/edge pair with the least Score.
func (a *Agenda) PopMin() (ChartItem, Edge) {
	e := heap.Pop(&a.h).(*agendaEntry)
	delete(a.entries, e.item)

	return e.item, e.edge
}
