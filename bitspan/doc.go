// Package bitspan provides the bit-vector primitives that chart items and
// rule yield functions are built from.
//
// What:
//
//   - NextSet/NextUnset/BitCount/BitLength/TestBit for a single machine word
//     ("narrow" spans, sentences under 64 tokens).
//   - Wide variants of the same five operations over a fixed-size array of
//     words ("wide" spans), plus the set algebra (Union, Intersect,
//     IntersectEmpty) both widths need for yield-function checking.
//
// Why:
//
//   - A span bitmask records which input positions a derivation covers.
//     Bit 0 is the leftmost input position (reversed from textual order, so
//     that "shift left" reads as "extend the span rightward").
//   - Sentences of 64 tokens or more cannot fit in one machine word; the wide
//     representation extends the same operations over SLOTS words without
//     changing their semantics.
//
// Complexity: every operation here is O(w) in the width of its operand.
// Only RunsNarrow and RunsWide allocate (the slice of runs they return).
package bitspan

// SLOTS is the number of 64-bit words backing a wide span. The longest
// sentence the wide representation can address is SLOTS*64-1 positions.
const SLOTS = 2

// MaxWideBits is the highest input position a Wide span can represent.
const MaxWideBits = SLOTS*64 - 1
