package geom

// NormalizeSizes returns a copy of sizes adjusted to sum exactly to total,
// keeping each entry at or above its minimum whenever total allows.
//
// Shrinking removes the overflow from the entries with the most remaining
// capacity (size minus minimum) first. If every entry is already at its
// minimum and overflow remains, the last entry absorbs it, even below its
// minimum, so the result still sums to total. Growing hands all extra space
// to the last entry; growth is not distributed proportionally.
//
// A single entry is clamped to max(total, minimum). mins may be shorter than
// sizes; missing minimums are zero.
func NormalizeSizes(sizes, mins []int, total int) []int {
	if len(sizes) == 0 {
		return nil
	}
	out := make([]int, len(sizes))
	copy(out, sizes)

	if len(out) == 1 {
		out[0] = total
		if m := minAt(mins, 0); out[0] < m {
			out[0] = m
		}
		return out
	}

	sum := 0
	for _, s := range out {
		sum += s
	}

	switch {
	case sum == total:
		return out
	case sum > total:
		over := sum - total
		for over > 0 {
			best, bestCap := -1, 0
			for i, s := range out {
				if c := s - minAt(mins, i); c > bestCap {
					best, bestCap = i, c
				}
			}
			if best < 0 {
				break
			}
			take := over
			if take > bestCap {
				take = bestCap
			}
			out[best] -= take
			over -= take
		}
		// Everything is at its floor. The last entry eats the rest so the
		// sum never misses total.
		if over > 0 {
			out[len(out)-1] -= over
		}
	default:
		out[len(out)-1] += total - sum
	}
	return out
}

// SplitEven splits total into n parts summing exactly to total, spreading
// the remainder one unit at a time over the leading parts.
func SplitEven(total, n int) []int {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	base := total / n
	rem := total - base*n
	out := make([]int, n)
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

func minAt(mins []int, i int) int {
	if i < len(mins) {
		return mins[i]
	}
	return 0
}
