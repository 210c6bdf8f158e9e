package bitspan

// Wide is a fixed-capacity bit array spanning SLOTS machine words. Word 0
// holds bits 0..63, word 1 holds bits 64..127, and so on. Bit 0 is the
// leftmost input position, same convention as the narrow representation.
type Wide [SLOTS]uint64

// NextSetWide returns the least bit index >= i that is set in v, or -1 if
// none exists. Complexity: O(SLOTS).
func NextSetWide(v Wide, i int) int {
	if i < 0 {
		i = 0
	}
	word := i / 64
	if word >= SLOTS {
		return -1
	}
	bit := NextSetNarrow(v[word], i-word*64)
	if bit >= 0 {
		return word*64 + bit
	}
	for word++; word < SLOTS; word++ {
		bit = NextSetNarrow(v[word], 0)
		if bit >= 0 {
			return word*64 + bit
		}
	}

	return -1
}

// NextUnsetWide returns the least bit index >= i that is unset in v, always
// defined within [0, SLOTS*64].
func NextUnsetWide(v Wide, i int) int {
	if i < 0 {
		i = 0
	}
	word := i / 64
	if word >= SLOTS {
		return i
	}
	bit := NextUnsetNarrow(v[word], i-word*64)
	if bit < 64 {
		return word*64 + bit
	}
	for word++; word < SLOTS; word++ {
		bit = NextUnsetNarrow(v[word], 0)
		if bit < 64 {
			return word*64 + bit
		}
	}

	return SLOTS * 64
}

// BitCountWide returns the number of set bits across all SLOTS words.
func BitCountWide(v Wide) int {
	n := 0
	for _, w := range v {
		n += BitCountNarrow(w)
	}

	return n
}

// BitLengthWide returns 1 + the index of the highest set bit in v, or 0 when
// v is empty.
func BitLengthWide(v Wide) int {
	for word := SLOTS - 1; word >= 0; word-- {
		if v[word] != 0 {
			return word*64 + BitLengthNarrow(v[word])
		}
	}

	return 0
}

// TestBitWide reports whether bit i of v is set.
func TestBitWide(v Wide, i int) bool {
	if i < 0 {
		return false
	}
	word := i / 64
	if word >= SLOTS {
		return false
	}

	return TestBitNarrow(v[word], i-word*64)
}

// SetBitWide returns v with bit i set.
func SetBitWide(v Wide, i int) Wide {
	word := i / 64
	v[word] |= uint64(1) << uint(i-word*64)

	return v
}

// UnionWide returns the bitwise union of a and b.
func UnionWide(a, b Wide) Wide {
	var out Wide
	for k := 0; k < SLOTS; k++ {
		out[k] = a[k] | b[k]
	}

	return out
}

// IntersectWide returns the bitwise intersection of a and b.
func IntersectWide(a, b Wide) Wide {
	var out Wide
	for k := 0; k < SLOTS; k++ {
		out[k] = a[k] & b[k]
	}

	return out
}

// IntersectEmptyWide reports whether a and b share no set bit.
func IntersectEmptyWide(a, b Wide) bool {
	for k := 0; k < SLOTS; k++ {
		if a[k]&b[k] != 0 {
			return false
		}
	}

	return true
}

// EmptyWide reports whether v has no set bits.
func EmptyWide(v Wide) bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}

	return true
}
