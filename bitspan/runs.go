package bitspan

// RunsNarrow returns the maximal contiguous runs of set bits in v as
// [start, end) pairs, in ascending order. Used to split a discontinuous
// span into its contiguous components (split-PCFG projection).
func RunsNarrow(v uint64) [][2]int {
	var runs [][2]int
	pos := 0
	for pos < 64 {
		start := NextSetNarrow(v, pos)
		if start < 0 {
			break
		}
		end := NextUnsetNarrow(v, start)
		runs = append(runs, [2]int{start, end})
		pos = end
	}

	return runs
}

// RunsWide is the Wide-span equivalent of RunsNarrow.
func RunsWide(v Wide) [][2]int {
	var runs [][2]int
	pos := 0
	limit := SLOTS * 64
	for pos < limit {
		start := NextSetWide(v, pos)
		if start < 0 {
			break
		}
		end := NextUnsetWide(v, start)
		runs = append(runs, [2]int{start, end})
		pos = end
	}

	return runs
}
