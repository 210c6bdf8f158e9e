package cfgparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talent-works/disco-dop/grammar"
)

func TestLabelAgendaOrdersByCostAndDecreaseKeys(t *testing.T) {
	a := newLabelAgenda()
	assert.True(t, a.Offer(grammar.Label(1), 5))
	assert.True(t, a.Offer(grammar.Label(2), 2))
	// Worse cost for an already-queued label: no change.
	assert.False(t, a.Offer(grammar.Label(2), 9))
	// Better cost: decrease-key.
	assert.True(t, a.Offer(grammar.Label(1), 1))

	label, cost := a.PopMin()
	assert.Equal(t, grammar.Label(1), label)
	assert.InDelta(t, 1, cost, 1e-12)

	label, cost = a.PopMin()
	assert.Equal(t, grammar.Label(2), label)
	assert.InDelta(t, 2, cost, 1e-12)

	assert.Equal(t, 0, a.Len())
}
