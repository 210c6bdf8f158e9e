package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talent-works/disco-dop/chart"
)

func TestAgendaPopOrderedByScore(t *testing.T) {
	a := chart.NewAgenda()
	items := []chart.ChartItem{
		{Label: 1, Span: chart.NarrowSpanOf(0)},
		{Label: 2, Span: chart.NarrowSpanOf(1)},
		{Label: 3, Span: chart.NarrowSpanOf(2)},
	}
	scores := []float64{5.0, 1.0, 3.0}
	for i, it := range items {
		a.Insert(it, chart.Edge{Score: scores[i], Inside: scores[i]})
	}
	require.Equal(t, 3, a.Len())

	item, edge := a.PopMin()
	assert.Equal(t, items[1], item)
	assert.Equal(t, 1.0, edge.Score)

	item, edge = a.PopMin()
	assert.Equal(t, items[2], item)
	assert.Equal(t, 3.0, edge.Score)

	item, edge = a.PopMin()
	assert.Equal(t, items[0], item)
	assert.Equal(t, 5.0, edge.Score)

	assert.Equal(t, 0, a.Len())
}

func TestAgendaSetIfBetter(t *testing.T) {
	a := chart.NewAgenda()
	item := chart.ChartItem{Label: 1, Span: chart.NarrowSpanOf(0)}
	a.Insert(item, chart.Edge{Score: 10})

	assert.False(t, a.SetIfBetter(item, chart.Edge{Score: 20}))
	edge, _ := a.Peek(item)
	assert.Equal(t, 10.0, edge.Score)

	assert.True(t, a.SetIfBetter(item, chart.Edge{Score: 2}))
	edge, _ = a.Peek(item)
	assert.Equal(t, 2.0, edge.Score)
}

func TestAgendaReplaceAndContains(t *testing.T) {
	a := chart.NewAgenda()
	item := chart.ChartItem{Label: 1, Span: chart.NarrowSpanOf(0)}
	assert.False(t, a.Contains(item))
	a.Insert(item, chart.Edge{Score: 10})
	assert.True(t, a.Contains(item))

	a.Replace(item, chart.Edge{Score: 1})
	edge, ok := a.Peek(item)
	require.True(t, ok)
	assert.Equal(t, 1.0, edge.Score)
}
