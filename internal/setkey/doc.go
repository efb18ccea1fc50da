// Package setkey gives integer sets an order-independent string identity and
// enumerates fixed-size subsets under that identity.
//
// A canonical key is formed by writing each member of an ascending-sorted set
// in decimal followed by Separator, so {3,1,2} keys as "1-2-3-". Sorting is
// the normalization step: two sets are equal iff their sorted keys are equal.
// CanonicalKey trusts its input order; Canonicalize sorts a copy first.
//
// Subset enumeration is lexicographic over index positions and fully
// deterministic, so callers may rely on position (for example, keeping the
// first occurrence of a key when deduplicating).
package setkey
