package parse

import "iter"

// splits yields, in increasing lexicographic order, every strictly
// increasing tuple of n indices drawn from the half-open range
// [lo, hi). Each tuple is the set of internal split points that cuts an
// argument token span into n+1 slices. The yielded slice is reused
// between iterations.
func splits(lo, hi, n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 || hi-lo < n {
			return
		}
		if n == 0 {
			yield(nil)
			return
		}
		idx := make([]int, n)
		for i := range idx {
			idx[i] = lo + i
		}
		for {
			if !yield(idx) {
				return
			}
			// Advance the rightmost index that still has room,
			// resetting everything after it.
			i := n - 1
			for i >= 0 && idx[i] == hi-n+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < n; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
