package tabular

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// maxLineSize bounds a single row. Candidate rows can list many members, so
// the bufio default of 64KiB is raised.
const maxLineSize = 4 << 20

// NameResolver maps a member name to its integer id.
type NameResolver interface {
	Index(name string) (int, bool)
}

// NameTable is a plain map satisfying NameResolver.
type NameTable map[string]int

// Index implements NameResolver.
func (t NameTable) Index(name string) (int, bool) {
	id, ok := t[name]
	return id, ok
}

// LoadNumericMatrix reads a whitespace-delimited float matrix from path.
// The first non-blank row fixes the column count; any later row with a
// different count fails with SCHEMA_MISMATCH.
func LoadNumericMatrix(path string) (*NumericMatrix, error) {
	m := &NumericMatrix{}
	err := scanRows(path, func(line int, fields []string) error {
		if len(m.rows) == 0 {
			m.cols = len(fields)
		} else if len(fields) != m.cols {
			return &LoadError{
				Code:     ErrCodeSchemaMismatch,
				Path:     path,
				Line:     line,
				Expected: m.cols,
				Actual:   len(fields),
			}
		}

		row := make([]float64, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return &LoadError{Code: ErrCodeParse, Path: path, Line: line, Column: i + 1, Token: tok, Err: err}
			}
			row[i] = v
		}
		m.rows = append(m.rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LoadIntegerRows reads one integer set per line from path. Each row is
// sorted ascending; row order follows the file.
func LoadIntegerRows(path string) ([][]int, error) {
	var rows [][]int
	err := scanRows(path, func(line int, fields []string) error {
		row := make([]int, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return &LoadError{Code: ErrCodeParse, Path: path, Line: line, Column: i + 1, Token: tok, Err: err}
			}
			row[i] = v
		}
		slices.Sort(row)
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadNamedIntegerRows reads one set of names per line from path, resolving
// each name to an id through names. Each row is sorted ascending by id; row
// order follows the file. A name missing from names fails with UNKNOWN_NAME.
func LoadNamedIntegerRows(names NameResolver, path string) ([][]int, error) {
	var rows [][]int
	err := scanRows(path, func(line int, fields []string) error {
		row := make([]int, len(fields))
		for i, tok := range fields {
			id, ok := names.Index(tok)
			if !ok {
				return &LoadError{Code: ErrCodeUnknownName, Path: path, Line: line, Column: i + 1, Token: tok}
			}
			row[i] = id
		}
		slices.Sort(row)
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// scanRows calls fn with the whitespace-split fields of every non-blank line
// of path. It stops at the first error fn returns. The file is closed on all
// paths.
func scanRows(path string, fn func(line int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
