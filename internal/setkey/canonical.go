package setkey

import (
	"fmt"
	"slices"
	"strconv"
)

// Separator terminates every member in a canonical key.
const Separator = '-'

// CanonicalKey renders sorted as a canonical key, preserving the given order.
// The caller must pass an ascending-sorted set; the empty set keys as "".
func CanonicalKey(sorted []int) string {
	buf := make([]byte, 0, len(sorted)*4)
	return string(appendKey(buf, sorted))
}

// Canonicalize sorts a copy of set ascending and returns its canonical key.
// The input slice is left untouched.
func Canonicalize(set []int) string {
	sorted := slices.Clone(set)
	slices.Sort(sorted)
	return CanonicalKey(sorted)
}

// ParseKey decodes a canonical key back into its members. A leading '-' on a
// member is read as a sign, so negative members round-trip.
func ParseKey(key string) ([]int, error) {
	out := []int{}
	i := 0
	for i < len(key) {
		start := i
		if key[i] == '-' {
			i++
		}
		digits := i
		for i < len(key) && key[i] >= '0' && key[i] <= '9' {
			i++
		}
		if i == digits {
			return nil, fmt.Errorf("canonical key %q: expected digit at offset %d", key, i)
		}
		if i >= len(key) || key[i] != Separator {
			return nil, fmt.Errorf("canonical key %q: missing %q after member at offset %d", key, Separator, start)
		}
		v, err := strconv.Atoi(key[start:i])
		if err != nil {
			return nil, fmt.Errorf("canonical key %q: %w", key, err)
		}
		out = append(out, v)
		i++
	}
	return out, nil
}

func appendKey(buf []byte, members []int) []byte {
	for _, m := range members {
		buf = strconv.AppendInt(buf, int64(m), 10)
		buf = append(buf, Separator)
	}
	return buf
}
