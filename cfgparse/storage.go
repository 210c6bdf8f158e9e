package cfgparse

import (
	"fmt"
	"math"

	"github.com/talent-works/disco-dop/grammar"
)

// viterbiTensor is the dense (label, left, right) Viterbi-cost table,
// row-major flat storage in the style of matrix.Dense, generalized from
// two dimensions to three. Unreached cells hold +Inf.
type viterbiTensor struct {
	labels int
	n      int // sentence length; left,right range over [0,n]
	data   []float64
}

func newViterbiTensor(labels, n int) *viterbiTensor {
	data := make([]float64, labels*(n+1)*(n+1))
	for i := range data {
		data[i] = math.Inf(1)
	}

	return &viterbiTensor{labels: labels, n: n, data: data}
}

func (v *viterbiTensor) index(label grammar.Label, left, right int) int {
	return int(label)*(v.n+1)*(v.n+1) + left*(v.n+1) + right
}

// At retrieves the Viterbi cost for label over [left, right); +Inf if
// label has never been derived over that span.
func (v *viterbiTensor) At(label grammar.Label, left, right int) float64 {
	return v.data[v.index(label, left, right)]
}

// Set overwrites the Viterbi cost for label over [left, right).
func (v *viterbiTensor) Set(label grammar.Label, left, right int, cost float64) {
	v.data[v.index(label, left, right)] = cost
}

// splitFilter is a dense int16 (label, position) matrix used for the four
// min/max split-index filters spec.md §4.3 prescribes as a pruning
// optimization ahead of the mid-point loop. minKind filters start at the
// sentinel math.MaxInt16 (vacuously "no split found yet, anything shorter
// than infinity will do"); maxKind filters start at -1 ("nothing found
// yet, anything longer than -1 will do"). Both sentinels are safe to
// leave loose: the mid-point loop in cfgparse.go independently verifies
// both child cells are finite before accepting a split, so an
// over-permissive filter costs only a wasted iteration, never a missed
// derivation.
type splitFilter struct {
	labels int
	n      int
	isMax  bool
	data   []int16
}

const filterSentinelMax = math.MaxInt16

func newSplitFilter(labels, n int, isMax bool) *splitFilter {
	f := &splitFilter{labels: labels, n: n, isMax: isMax, data: make([]int16, labels*(n+1))}
	fill := int16(filterSentinelMax)
	if isMax {
		fill = -1
	}
	for i := range f.data {
		f.data[i] = fill
	}

	return f
}

func (f *splitFilter) index(label grammar.Label, pos int) int {
	return int(label)*(f.n+1) + pos
}

func (f *splitFilter) At(label grammar.Label, pos int) int {
	return int(f.data[f.index(label, pos)])
}

// Observe records that label was derived with boundary value at pos,
// tightening the stored extreme if value improves on it.
func (f *splitFilter) Observe(label grammar.Label, pos, value int) {
	i := f.index(label, pos)
	cur := int(f.data[i])
	if f.isMax {
		if value > cur {
			f.data[i] = int16(value)
		}
		return
	}
	if value < cur {
		f.data[i] = int16(value)
	}
}

// filters bundles the four split-index tables spec.md §4.3 names:
// minsplitleft, maxsplitleft, minsplitright, maxsplitright.
type filters struct {
	minsplitleft  *splitFilter
	maxsplitleft  *splitFilter
	minsplitright *splitFilter
	maxsplitright *splitFilter
}

func newFilters(labels, n int) *filters {
	return &filters{
		minsplitleft:  newSplitFilter(labels, n, false),
		maxsplitleft:  newSplitFilter(labels, n, true),
		minsplitright: newSplitFilter(labels, n, false),
		maxsplitright: newSplitFilter(labels, n, true),
	}
}

// observe registers that label was just found to derive [left, right),
// tightening all four filters for this (label, left, right) triple.
func (f *filters) observe(label grammar.Label, left, right int) {
	f.minsplitleft.Observe(label, right, left)
	f.maxsplitleft.Observe(label, right, left)
	f.minsplitright.Observe(label, left, right)
	f.maxsplitright.Observe(label, left, right)
}

func (f *filters) String() string {
	return fmt.Sprintf("filters{labels=%d}", f.minsplitleft.labels)
}
