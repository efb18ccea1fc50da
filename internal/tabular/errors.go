package tabular

import (
	"errors"
	"fmt"
)

// LoadErrorCode categorizes load failures.
type LoadErrorCode string

const (
	// ErrCodeSchemaMismatch indicates a numeric row whose column count differs
	// from the first row's.
	ErrCodeSchemaMismatch LoadErrorCode = "SCHEMA_MISMATCH"

	// ErrCodeParse indicates a token that is not a valid number.
	ErrCodeParse LoadErrorCode = "PARSE_ERROR"

	// ErrCodeUnknownName indicates a name token absent from the name map.
	ErrCodeUnknownName LoadErrorCode = "UNKNOWN_NAME"
)

// LoadError is returned by every loader in this package.
type LoadError struct {
	Code LoadErrorCode

	// Path is the file being read.
	Path string

	// Line is the 1-based line number in Path.
	Line int

	// Column is the 1-based token position within the line (0 if not applicable).
	Column int

	// Token is the offending token, if any.
	Token string

	// Expected and Actual are set for SCHEMA_MISMATCH (column counts).
	Expected int
	Actual   int

	// Err is the underlying parse error, if any.
	Err error
}

func (e *LoadError) Error() string {
	switch e.Code {
	case ErrCodeSchemaMismatch:
		return fmt.Sprintf("%s: %s:%d: different number of columns: %d != %d",
			e.Code, e.Path, e.Line, e.Expected, e.Actual)
	case ErrCodeUnknownName:
		return fmt.Sprintf("%s: %s:%d: name %q not found in name map", e.Code, e.Path, e.Line, e.Token)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s:%d: column %d: %q: %v", e.Code, e.Path, e.Line, e.Column, e.Token, e.Err)
		}
		return fmt.Sprintf("%s: %s:%d: column %d: %q", e.Code, e.Path, e.Line, e.Column, e.Token)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsSchemaMismatch reports whether err is a SCHEMA_MISMATCH load error.
func IsSchemaMismatch(err error) bool {
	return hasCode(err, ErrCodeSchemaMismatch)
}

// IsParseError reports whether err is a PARSE_ERROR load error.
func IsParseError(err error) bool {
	return hasCode(err, ErrCodeParse)
}

// IsUnknownName reports whether err is an UNKNOWN_NAME load error.
func IsUnknownName(err error) bool {
	return hasCode(err, ErrCodeUnknownName)
}

func hasCode(err error, code LoadErrorCode) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}
