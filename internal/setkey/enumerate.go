package setkey

import (
	"iter"
	"slices"
)

// Subsets yields the canonical key of every k-element subset of sorted, in
// lexicographic order of chosen index positions. sorted must be ascending so
// that each emitted subset is itself sorted.
//
// k == 0 yields exactly one key, the empty-set key "". k < 0 or
// k > len(sorted) yields nothing.
func Subsets(sorted []int, k int) iter.Seq[string] {
	return func(yield func(string) bool) {
		n := len(sorted)
		if k < 0 || k > n {
			return
		}

		// idx holds the chosen positions, strictly increasing.
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		chosen := make([]int, k)
		buf := make([]byte, 0, k*4)

		for {
			for i, p := range idx {
				chosen[i] = sorted[p]
			}
			buf = appendKey(buf[:0], chosen)
			if !yield(string(buf)) {
				return
			}

			// Advance the rightmost position that still has room, then reset
			// everything after it to the smallest increasing run.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Enumerate returns every k-element subset of sorted as canonical keys, in the
// order produced by Subsets. The result has exactly Count(len(sorted), k)
// entries.
func Enumerate(sorted []int, k int) []string {
	out := slices.Collect(Subsets(sorted, k))
	if out == nil {
		return []string{}
	}
	return out
}

// Count returns the binomial coefficient C(n, k), the number of keys
// Enumerate produces for a set of size n. It returns 0 when k is out of range.
// Results that overflow int are not detected.
func Count(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 0; i < k; i++ {
		c = c * (n - i) / (i + 1)
	}
	return c
}

// Dedupe drops repeated keys, keeping the first occurrence of each so that
// the surviving order matches the input order.
func Dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
