// Package tabular loads the whitespace-delimited parameter files that feed
// and surround the solver run.
//
// Three shapes are supported:
//   - Numeric matrices: every row has the same number of float columns,
//     fixed by the first row read.
//   - Integer rows: each row is a set of integer ids, sorted ascending on load.
//   - Named integer rows: like integer rows, but each token is a name that is
//     resolved to an id through a NameResolver before sorting.
//
// Row order is preserved in every case. Callers pair rows across files by
// position, so a loader must never drop, merge or reorder non-blank rows.
// Blank lines carry no data and are skipped.
//
// All failures are *LoadError values carrying the file path, the 1-based
// line number and, where relevant, the offending token.
package tabular
