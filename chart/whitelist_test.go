package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talent-works/disco-dop/chart"
)

func TestWhitelistMissingEntryUnrestricted(t *testing.T) {
	w := chart.Whitelist{}
	item := chart.ChartItem{Label: 5, Span: chart.NarrowSpanOf(0)}
	assert.True(t, w.Check(item, 1, false, false))
}

func TestWhitelistEmptyEntryBlocksEverything(t *testing.T) {
	w := chart.Whitelist{
		5: {Kind: chart.WhitelistPlain, Plain: map[chart.Span]struct{}{}},
	}
	item := chart.ChartItem{Label: 5, Span: chart.NarrowSpanOf(0)}
	assert.False(t, w.Check(item, 1, false, false))
}

func TestWhitelistPlainMembership(t *testing.T) {
	span := chart.NarrowSpanOf(2)
	w := chart.Whitelist{
		5: {Kind: chart.WhitelistPlain, Plain: map[chart.Span]struct{}{span: {}}},
	}
	hit := chart.ChartItem{Label: 5, Span: span}
	miss := chart.ChartItem{Label: 5, Span: chart.NarrowSpanOf(3)}
	assert.True(t, w.Check(hit, 1, false, false))
	assert.False(t, w.Check(miss, 1, false, false))
}

func TestWhitelistSplitSharedComponents(t *testing.T) {
	// discontinuous span covering positions {0,1} and {4,5}: two runs.
	v := chart.NarrowSpan(0b0)
	v = chart.NarrowSpan(uint64(v) | uint64(chart.NarrowSpanOf(0)) | uint64(chart.NarrowSpanOf(1)))
	v = chart.NarrowSpan(uint64(v) | uint64(chart.NarrowSpanOf(4)) | uint64(chart.NarrowSpanOf(5)))

	comp1 := v.ComponentSpan(0, 2)
	comp2 := v.ComponentSpan(4, 6)
	w := chart.Whitelist{
		7: {
			Kind:        chart.WhitelistSplitShared,
			SplitShared: map[chart.Span]struct{}{comp1: {}, comp2: {}},
		},
	}
	item := chart.ChartItem{Label: 7, Span: v}
	assert.True(t, w.Check(item, 2, true, false))

	// Remove one component: now blocked.
	delete(w[7].SplitShared, comp2)
	assert.False(t, w.Check(item, 2, true, false))
}

func TestWhitelistSplitPerPosition(t *testing.T) {
	v := chart.NarrowSpan(uint64(chart.NarrowSpanOf(0)) | uint64(chart.NarrowSpanOf(1)) | uint64(chart.NarrowSpanOf(4)))
	comp0 := v.ComponentSpan(0, 2)
	comp1 := v.ComponentSpan(4, 5)
	w := chart.Whitelist{
		7: {
			Kind: chart.WhitelistSplit,
			Split: []map[chart.Span]struct{}{
				{comp0: {}},
				{comp1: {}},
			},
		},
	}
	item := chart.ChartItem{Label: 7, Span: v}
	assert.True(t, w.Check(item, 2, true, true))

	w[7].Split[1] = map[chart.Span]struct{}{}
	assert.False(t, w.Check(item, 2, true, true))
}
