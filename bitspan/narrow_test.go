package bitspan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talent-works/disco-dop/bitspan"
)

func TestNextSetNarrow(t *testing.T) {
	cases := []struct {
		name string
		v    uint64
		i    int
		want int
	}{
		{"empty", 0, 0, -1},
		{"bit0", 0b1, 0, 0},
		{"skip lower", 0b1000, 1, 3},
		{"start past width", 0b1, 64, -1},
		{"exact hit", 0b10110, 2, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, bitspan.NextSetNarrow(c.v, c.i))
		})
	}
}

func TestNextUnsetNarrow(t *testing.T) {
	assert.Equal(t, 0, bitspan.NextUnsetNarrow(0, 0))
	assert.Equal(t, 1, bitspan.NextUnsetNarrow(0b1, 0))
	assert.Equal(t, 64, bitspan.NextUnsetNarrow(^uint64(0), 0))
	assert.Equal(t, 4, bitspan.NextUnsetNarrow(0b01111, 0))
}

func TestBitCountNarrow(t *testing.T) {
	assert.Equal(t, 0, bitspan.BitCountNarrow(0))
	assert.Equal(t, 3, bitspan.BitCountNarrow(0b1011))
	assert.Equal(t, 64, bitspan.BitCountNarrow(^uint64(0)))
}

func TestBitLengthNarrow(t *testing.T) {
	assert.Equal(t, 0, bitspan.BitLengthNarrow(0))
	assert.Equal(t, 1, bitspan.BitLengthNarrow(0b1))
	assert.Equal(t, 4, bitspan.BitLengthNarrow(0b1000))
	assert.Equal(t, 64, bitspan.BitLengthNarrow(^uint64(0)))
}

func TestTestBitNarrow(t *testing.T) {
	assert.True(t, bitspan.TestBitNarrow(0b1010, 1))
	assert.False(t, bitspan.TestBitNarrow(0b1010, 0))
	assert.False(t, bitspan.TestBitNarrow(0b1010, 64))
	assert.False(t, bitspan.TestBitNarrow(0b1010, -1))
}
