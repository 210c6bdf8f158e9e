package grammar

import "github.com/talent-works/disco-dop/bitspan"

// EncodeYield packs a yield function — a tuple of tuples of 0/1 atoms, where
// 0 picks the next unconsumed run of the left child and 1 the right child —
// into the compact Args/Lengths encoding Rule stores.
//
// Atom i (0-indexed across the flattened argument list, first atom first)
// occupies bit i of both words: bit i of Args is the atom's side (0 or 1);
// bit i of Lengths is set iff atom i is the last atom of its argument. This
// keeps BitLength(Lengths) == the total atom count, since the final atom of
// the final argument is always an argument boundary.
//
// Example: ((0,1,0),(1,0)) has atoms [0,1,0,1,0] with boundaries after atom
// index 2 (end of the first argument) and atom index 4 (end of the second,
// and the last atom overall). That packs to Args = 0b01010, Lengths =
// 0b10100.
func EncodeYield(yf [][]int) (args, lengths uint64, err error) {
	idx := 0
	for _, arg := range yf {
		if len(arg) == 0 {
			return 0, 0, ErrMalformedYield
		}
		for j, atom := range arg {
			if atom != 0 && atom != 1 {
				return 0, 0, ErrMalformedYield
			}
			if idx >= 64 {
				return 0, 0, ErrYieldTooWide
			}
			if atom == 1 {
				args |= uint64(1) << uint(idx)
			}
			if j == len(arg)-1 {
				lengths |= uint64(1) << uint(idx)
			}
			idx++
		}
	}
	if idx == 0 {
		return 0, 0, ErrMalformedYield
	}

	return args, lengths, nil
}

// DecodeYield reverses EncodeYield, reconstructing the tuple-of-tuples form.
// It is used by test fixtures and debugging tools, never by the hot parsing
// path (lcfrs.concat walks Args/Lengths directly).
func DecodeYield(args, lengths uint64) [][]int {
	n := bitspan.BitLengthNarrow(lengths)
	result := [][]int{}
	cur := []int{}
	for i := 0; i < n; i++ {
		atom := 0
		if bitspan.TestBitNarrow(args, i) {
			atom = 1
		}
		cur = append(cur, atom)
		if bitspan.TestBitNarrow(lengths, i) {
			result = append(result, cur)
			cur = []int{}
		}
	}

	return result
}

// IsPlainConcatenation reports whether a yield function is the trivial
// two-atom ((0,1),) form lcfrs.concat fast-paths into a contiguity check.
func IsPlainConcatenation(args, lengths uint64) bool {
	return args == 0b10 && lengths == 0b10
}
