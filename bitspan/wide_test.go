package bitspan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talent-works/disco-dop/bitspan"
)

func TestWideCrossesWordBoundary(t *testing.T) {
	v := bitspan.SetBitWide(bitspan.Wide{}, 70)
	assert.True(t, bitspan.TestBitWide(v, 70))
	assert.Equal(t, 70, bitspan.NextSetWide(v, 0))
	assert.Equal(t, -1, bitspan.NextSetWide(v, 71))
	assert.Equal(t, 1, bitspan.BitCountWide(v))
	assert.Equal(t, 71, bitspan.BitLengthWide(v))
}

func TestWideUnionIntersect(t *testing.T) {
	a := bitspan.SetBitWide(bitspan.Wide{}, 10)
	b := bitspan.SetBitWide(bitspan.Wide{}, 90)
	u := bitspan.UnionWide(a, b)
	assert.True(t, bitspan.TestBitWide(u, 10))
	assert.True(t, bitspan.TestBitWide(u, 90))
	assert.True(t, bitspan.IntersectEmptyWide(a, b))

	c := bitspan.SetBitWide(a, 90)
	assert.False(t, bitspan.IntersectEmptyWide(u, c))
	inter := bitspan.IntersectWide(u, c)
	assert.True(t, bitspan.TestBitWide(inter, 10))
	assert.True(t, bitspan.TestBitWide(inter, 90))
}

func TestWideEmpty(t *testing.T) {
	assert.True(t, bitspan.EmptyWide(bitspan.Wide{}))
	assert.False(t, bitspan.EmptyWide(bitspan.SetBitWide(bitspan.Wide{}, 5)))
}

func TestNextUnsetWideSaturated(t *testing.T) {
	var full bitspan.Wide
	for i := 0; i < bitspan.SLOTS*64; i++ {
		full = bitspan.SetBitWide(full, i)
	}
	assert.Equal(t, bitspan.SLOTS*64, bitspan.NextUnsetWide(full, 0))
}
