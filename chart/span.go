package chart

import (
	"fmt"
	"strconv"

	"github.com/talent-works/disco-dop/bitspan"
)

// Span is a span bitmask in either of its two widths. Implementations are
// plain comparable values so a Span (and therefore a ChartItem) can key a
// Go map with no boxing beyond the interface word itself.
type Span interface {
	// Union returns the bitwise union of the receiver and other. Panics if
	// other is not the same concrete width.
	Union(other Span) Span

	// IntersectEmpty reports whether the receiver and other share no bit.
	IntersectEmpty(other Span) bool

	// IsEmpty reports whether no bit is set.
	IsEmpty() bool

	// NextSet returns the least bit index >= i that is set, or -1.
	NextSet(i int) int

	// PopCount returns the number of set bits.
	PopCount() int

	// BitLength returns 1 + the index of the highest set bit, or 0 if empty.
	BitLength() int

	// TestBit reports whether bit i is set.
	TestBit(i int) bool

	// String renders the span for diagnostics.
	String() string

	// Runs returns the maximal contiguous runs of set bits as [start, end)
	// pairs, ascending by start. Used by split-PCFG whitelist projection.
	Runs() [][2]int

	// ComponentSpan builds a Span of the same concrete width covering
	// exactly [start, end).
	ComponentSpan(start, end int) Span
}

// NarrowSpan is a Span backed by a single machine word (sentences < 64 tokens).
type NarrowSpan uint64

// Union implements Span.
func (v NarrowSpan) Union(other Span) Span {
	o, ok := other.(NarrowSpan)
	if !ok {
		panic("chart: NarrowSpan.Union given a non-narrow span")
	}

	return v | o
}

// IntersectEmpty implements Span.
func (v NarrowSpan) IntersectEmpty(other Span) bool {
	o, ok := other.(NarrowSpan)
	if !ok {
		panic("chart: NarrowSpan.IntersectEmpty given a non-narrow span")
	}

	return v&o == 0
}

// IsEmpty implements Span.
func (v NarrowSpan) IsEmpty() bool { return v == 0 }

// NextSet implements Span.
func (v NarrowSpan) NextSet(i int) int { return bitspan.NextSetNarrow(uint64(v), i) }

// PopCount implements Span.
func (v NarrowSpan) PopCount() int { return bitspan.BitCountNarrow(uint64(v)) }

// BitLength implements Span.
func (v NarrowSpan) BitLength() int { return bitspan.BitLengthNarrow(uint64(v)) }

// TestBit implements Span.
func (v NarrowSpan) TestBit(i int) bool { return bitspan.TestBitNarrow(uint64(v), i) }

// String implements Span.
func (v NarrowSpan) String() string { return strconv.FormatUint(uint64(v), 2) }

// Runs implements Span.
func (v NarrowSpan) Runs() [][2]int { return bitspan.RunsNarrow(uint64(v)) }

// ComponentSpan implements Span.
func (v NarrowSpan) ComponentSpan(start, end int) Span {
	return NarrowSpan((uint64(1)<<uint(end) - 1) &^ (uint64(1)<<uint(start) - 1))
}

// WideSpan is a Span backed by a bitspan.Wide array (sentences >= 64 tokens).
type WideSpan bitspan.Wide

// Union implements Span.
func (v WideSpan) Union(other Span) Span {
	o, ok := other.(WideSpan)
	if !ok {
		panic("chart: WideSpan.Union given a non-wide span")
	}

	return WideSpan(bitspan.UnionWide(bitspan.Wide(v), bitspan.Wide(o)))
}

// IntersectEmpty implements Span.
func (v WideSpan) IntersectEmpty(other Span) bool {
	o, ok := other.(WideSpan)
	if !ok {
		panic("chart: WideSpan.IntersectEmpty given a non-wide span")
	}

	return bitspan.IntersectEmptyWide(bitspan.Wide(v), bitspan.Wide(o))
}

// IsEmpty implements Span.
func (v WideSpan) IsEmpty() bool { return bitspan.EmptyWide(bitspan.Wide(v)) }

// NextSet implements Span.
func (v WideSpan) NextSet(i int) int { return bitspan.NextSetWide(bitspan.Wide(v), i) }

// PopCount implements Span.
func (v WideSpan) PopCount() int { return bitspan.BitCountWide(bitspan.Wide(v)) }

// BitLength implements Span.
func (v WideSpan) BitLength() int { return bitspan.BitLengthWide(bitspan.Wide(v)) }

// TestBit implements Span.
func (v WideSpan) TestBit(i int) bool { return bitspan.TestBitWide(bitspan.Wide(v), i) }

// String implements Span.
func (v WideSpan) String() string { return fmt.Sprintf("%064b%064b", v[1], v[0]) }

// Runs implements Span.
func (v WideSpan) Runs() [][2]int { return bitspan.RunsWide(bitspan.Wide(v)) }

// ComponentSpan implements Span.
func (v WideSpan) ComponentSpan(start, end int) Span {
	var out bitspan.Wide
	for i := start; i < end; i++ {
		out = bitspan.SetBitWide(out, i)
	}

	return WideSpan(out)
}

// NarrowSpanOf returns a NarrowSpan with a single bit set at position i.
func NarrowSpanOf(i int) NarrowSpan { return NarrowSpan(uint64(1) << uint(i)) }

// WideSpanOf returns a WideSpan with a single bit set at position i.
func WideSpanOf(i int) WideSpan { return WideSpan(bitspan.SetBitWide(bitspan.Wide{}, i)) }
