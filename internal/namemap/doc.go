// Package namemap provides the read-only association between member names
// and the integer ids the solver model uses.
//
// The map is owned by whatever produced the solver model. This package only
// reads it, from either a text file or a SQLite database, into an in-memory
// Table that answers lookups in both directions.
//
// Names are NFC-normalized on load and on lookup so that visually identical
// names in different Unicode forms resolve to the same id.
package namemap
