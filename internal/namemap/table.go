package namemap

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Map is the lookup contract consumers depend on.
type Map interface {
	// Index resolves a name to its id.
	Index(name string) (int, bool)

	// Name resolves an id to its name.
	Name(index int) (string, bool)
}

// MapErrorCode categorizes name map failures.
type MapErrorCode string

const (
	ErrCodeDuplicateName  MapErrorCode = "DUPLICATE_NAME"
	ErrCodeDuplicateIndex MapErrorCode = "DUPLICATE_INDEX"
	ErrCodeBadEntry       MapErrorCode = "BAD_ENTRY"
)

// MapError reports an inconsistent or unreadable name map entry.
type MapError struct {
	Code   MapErrorCode
	Source string
	Line   int // 1-based for text sources, 0 otherwise
	Name   string
	Index  int
	Detail string
}

func (e *MapError) Error() string {
	loc := e.Source
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	switch e.Code {
	case ErrCodeDuplicateName:
		return fmt.Sprintf("%s: %s: name %q mapped twice", e.Code, loc, e.Name)
	case ErrCodeDuplicateIndex:
		return fmt.Sprintf("%s: %s: index %d mapped twice", e.Code, loc, e.Index)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Code, loc, e.Detail)
	}
}

// IsMapError reports whether err is a *MapError with the given code.
func IsMapError(err error, code MapErrorCode) bool {
	var me *MapError
	if errors.As(err, &me) {
		return me.Code == code
	}
	return false
}

// Table is an immutable bidirectional name/id map.
type Table struct {
	byName  map[string]int
	byIndex map[int]string
}

var _ Map = (*Table)(nil)

// New builds a Table from id -> name entries. Names that collide after
// normalization are rejected.
func New(entries map[int]string) (*Table, error) {
	b := newBuilder("literal")

	ids := make([]int, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if err := b.add(0, id, entries[id]); err != nil {
			return nil, err
		}
	}
	return b.table(), nil
}

// Index implements Map.
func (t *Table) Index(name string) (int, bool) {
	id, ok := t.byName[norm.NFC.String(name)]
	return id, ok
}

// Name implements Map.
func (t *Table) Name(index int) (string, bool) {
	name, ok := t.byIndex[index]
	return name, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.byIndex)
}

type builder struct {
	source string
	t      *Table
}

func newBuilder(source string) *builder {
	return &builder{
		source: source,
		t: &Table{
			byName:  make(map[string]int),
			byIndex: make(map[int]string),
		},
	}
}

func (b *builder) add(line, id int, name string) error {
	name = norm.NFC.String(name)
	if name == "" {
		return &MapError{Code: ErrCodeBadEntry, Source: b.source, Line: line, Index: id, Detail: "empty name"}
	}
	if _, ok := b.t.byName[name]; ok {
		return &MapError{Code: ErrCodeDuplicateName, Source: b.source, Line: line, Name: name, Index: id}
	}
	if _, ok := b.t.byIndex[id]; ok {
		return &MapError{Code: ErrCodeDuplicateIndex, Source: b.source, Line: line, Name: name, Index: id}
	}
	b.t.byName[name] = id
	b.t.byIndex[id] = name
	return nil
}

func (b *builder) table() *Table {
	return b.t
}
