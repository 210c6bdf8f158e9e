package lcfrs

import (
	"github.com/talent-works/disco-dop/bitspan"
	"github.com/talent-works/disco-dop/chart"
	"github.com/talent-works/disco-dop/grammar"
)

// Concat tests whether lvec and rvec can compose under rule's yield
// function, using narrow (single-word) bitmask arithmetic. It is the
// compatibility test spec §4.2 calls "concat".
//
// Algorithm: walk the yield function's atoms in order. A moving position
// tracks the next expected run-start in whichever side (left or right) the
// current atom selects; consuming an atom's run clears it from both
// working copies (they are disjoint by construction, so clearing the
// non-owning side is a no-op — kept so both widths share the same
// acceptance check). Argument boundaries (a set Lengths bit) additionally
// require a real gap — both vectors 0 at the boundary position — before
// the position advances to the next unconsumed run. Acceptance requires
// both vectors fully consumed.
func Concat(rule grammar.Rule, lvec, rvec chart.NarrowSpan) bool {
	l, r := uint64(lvec), uint64(rvec)
	if l&r != 0 {
		return false
	}
	if grammar.IsPlainConcatenation(rule.Args, rule.Lengths) {
		return plainConcatNarrow(l, r)
	}

	n := bitspan.BitLengthNarrow(rule.Lengths)
	if n == 0 {
		return l == 0 && r == 0
	}

	selected := l
	if bitspan.TestBitNarrow(rule.Args, 0) {
		selected = r
	}
	pos := bitspan.NextSetNarrow(selected, 0)
	if pos < 0 {
		return false
	}

	for i := 0; i < n; i++ {
		selected = l
		if bitspan.TestBitNarrow(rule.Args, i) {
			selected = r
		}
		if !bitspan.TestBitNarrow(selected, pos) {
			return false
		}
		runEnd := bitspan.NextUnsetNarrow(selected, pos)
		runMask := runMaskNarrow(pos, runEnd)
		l &^= runMask
		r &^= runMask

		if bitspan.TestBitNarrow(rule.Lengths, i) {
			if runEnd < 64 && (bitspan.TestBitNarrow(l, runEnd) || bitspan.TestBitNarrow(r, runEnd)) {
				return false
			}
			if i+1 < n {
				next := bitspan.NextSetNarrow(l|r, runEnd)
				if next < 0 {
					return false
				}
				pos = next
			}
		} else {
			pos = runEnd
		}
	}

	return l == 0 && r == 0
}

// plainConcatNarrow is the fast path for the trivial two-atom
// "left then right" yield function: lvec and rvec must both be non-empty
// and contiguous, and rvec must begin exactly where lvec ends.
func plainConcatNarrow(l, r uint64) bool {
	if l == 0 || r == 0 {
		return false
	}
	leftEnd := bitspan.NextUnsetNarrow(l, bitspan.NextSetNarrow(l, 0))
	rightStart := bitspan.NextSetNarrow(r, 0)
	rightEnd := bitspan.NextUnsetNarrow(r, rightStart)

	return leftEnd == rightStart && bitspan.NextSetNarrow(l, leftEnd) < 0 && bitspan.NextSetNarrow(r, rightEnd) < 0
}

func runMaskNarrow(start, end int) uint64 {
	var hi uint64
	if end < 64 {
		hi = uint64(1)<<uint(end) - 1
	} else {
		hi = ^uint64(0)
	}
	lo := uint64(1)<<uint(start) - 1

	return hi &^ lo
}

// FatConcat is the wide-span (SLOTS-word) equivalent of Concat, used once
// the sentence no longer fits a single machine word. It runs the identical
// atom walk over a bitspan.Wide pair instead of a single uint64; spec §8
// property 5 requires the two agree on every pair representable in both
// widths, which holds here because both share the exact same algorithm,
// only the bit-vector width differs.
func FatConcat(rule grammar.Rule, lvec, rvec chart.WideSpan) bool {
	l, r := bitspan.Wide(lvec), bitspan.Wide(rvec)
	if !bitspan.IntersectEmptyWide(l, r) {
		return false
	}
	if grammar.IsPlainConcatenation(rule.Args, rule.Lengths) {
		return plainConcatWide(l, r)
	}

	n := bitspan.BitLengthNarrow(rule.Lengths)
	if n == 0 {
		return bitspan.EmptyWide(l) && bitspan.EmptyWide(r)
	}

	selected := l
	if bitspan.TestBitNarrow(rule.Args, 0) {
		selected = r
	}
	pos := bitspan.NextSetWide(selected, 0)
	if pos < 0 {
		return false
	}

	for i := 0; i < n; i++ {
		selected = l
		if bitspan.TestBitNarrow(rule.Args, i) {
			selected = r
		}
		if !bitspan.TestBitWide(selected, pos) {
			return false
		}
		runEnd := bitspan.NextUnsetWide(selected, pos)
		for p := pos; p < runEnd; p++ {
			l = clearBitWide(l, p)
			r = clearBitWide(r, p)
		}

		if bitspan.TestBitNarrow(rule.Lengths, i) {
			if runEnd < bitspan.SLOTS*64 && (bitspan.TestBitWide(l, runEnd) || bitspan.TestBitWide(r, runEnd)) {
				return false
			}
			if i+1 < n {
				next := bitspan.NextSetWide(bitspan.UnionWide(l, r), runEnd)
				if next < 0 {
					return false
				}
				pos = next
			}
		} else {
			pos = runEnd
		}
	}

	return bitspan.EmptyWide(l) && bitspan.EmptyWide(r)
}

func plainConcatWide(l, r bitspan.Wide) bool {
	if bitspan.EmptyWide(l) || bitspan.EmptyWide(r) {
		return false
	}
	leftEnd := bitspan.NextUnsetWide(l, bitspan.NextSetWide(l, 0))
	rightStart := bitspan.NextSetWide(r, 0)
	rightEnd := bitspan.NextUnsetWide(r, rightStart)

	return leftEnd == rightStart && bitspan.NextSetWide(l, leftEnd) < 0 && bitspan.NextSetWide(r, rightEnd) < 0
}

func clearBitWide(v bitspan.Wide, i int) bitspan.Wide {
	word := i / 64
	v[word] &^= uint64(1) << uint(i-word*64)

	return v
}
