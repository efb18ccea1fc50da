package solution

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationErrorCode categorizes report validation failures.
type ValidationErrorCode string

const (
	// ErrCodeMalformedLine indicates a "build[" line without exactly six tokens.
	ErrCodeMalformedLine ValidationErrorCode = "MALFORMED_SOLUTION_LINE"

	// ErrCodeNonInteger indicates a decision value outside {0, 1}.
	ErrCodeNonInteger ValidationErrorCode = "NON_INTEGER_SOLUTION"

	// ErrCodeLengthMismatch indicates the decision, candidate and storage
	// counts disagree.
	ErrCodeLengthMismatch ValidationErrorCode = "LENGTH_MISMATCH"

	// ErrCodeNotScalar indicates total_storage or T is not a 1x1 matrix.
	ErrCodeNotScalar ValidationErrorCode = "NOT_SCALAR"

	// ErrCodeZeroBudget indicates a total_storage of zero, which leaves the
	// storage ratio undefined.
	ErrCodeZeroBudget ValidationErrorCode = "ZERO_STORAGE_BUDGET"

	// ErrCodeUnknownIndex indicates a candidate member id the name map
	// cannot render.
	ErrCodeUnknownIndex ValidationErrorCode = "UNKNOWN_INDEX"
)

// ValidationError is returned when solver output or its companion files fail
// a consistency check.
type ValidationError struct {
	Code ValidationErrorCode

	// Message is a human-readable description.
	Message string

	// Source is the file the problem was found in, if any.
	Source string

	// Line is the 1-based line in Source (MALFORMED_SOLUTION_LINE).
	Line int

	// Raw is the offending line as read (MALFORMED_SOLUTION_LINE).
	Raw string

	// Index is the decision/candidate index (NON_INTEGER_SOLUTION, UNKNOWN_INDEX).
	Index int

	// Value is the offending decision value (NON_INTEGER_SOLUTION).
	Value float64

	// Details contains additional context such as expected vs actual counts.
	Details map[string]string
}

func (e *ValidationError) Error() string {
	if e.Source != "" && e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", e.Code, e.Source, e.Line, e.Message)
	}
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Source, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsMalformedLine reports whether err is a MALFORMED_SOLUTION_LINE error.
func IsMalformedLine(err error) bool {
	return hasCode(err, ErrCodeMalformedLine)
}

// IsNonInteger reports whether err is a NON_INTEGER_SOLUTION error.
func IsNonInteger(err error) bool {
	return hasCode(err, ErrCodeNonInteger)
}

// IsLengthMismatch reports whether err is a LENGTH_MISMATCH error.
func IsLengthMismatch(err error) bool {
	return hasCode(err, ErrCodeLengthMismatch)
}

func hasCode(err error, code ValidationErrorCode) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

func newMalformedLineError(source string, line int, raw string, tokens int) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeMalformedLine,
		Message: fmt.Sprintf("bad solution line format: expected 6 tokens, got %d: %q", tokens, raw),
		Source:  source,
		Line:    line,
		Raw:     raw,
		Details: map[string]string{
			"expected_tokens": "6",
			"actual_tokens":   strconv.Itoa(tokens),
		},
	}
}

func newNonIntegerError(index int, value float64) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeNonInteger,
		Message: fmt.Sprintf("solution is not integer at index %d: value %s", index, formatFloat(value)),
		Index:   index,
		Value:   value,
	}
}

func newLengthMismatchError(decisions, candidates, storage int) *ValidationError {
	return &ValidationError{
		Code: ErrCodeLengthMismatch,
		Message: fmt.Sprintf("read %d decisions but %d candidates and %d storage rows",
			decisions, candidates, storage),
		Details: map[string]string{
			"decisions":  strconv.Itoa(decisions),
			"candidates": strconv.Itoa(candidates),
			"storage":    strconv.Itoa(storage),
		},
	}
}

func newNotScalarError(source string, rows, cols int) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeNotScalar,
		Message: fmt.Sprintf("expected a 1x1 matrix, got %dx%d", rows, cols),
		Source:  source,
		Details: map[string]string{
			"rows": strconv.Itoa(rows),
			"cols": strconv.Itoa(cols),
		},
	}
}

func newUnknownIndexError(index, member int) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeUnknownIndex,
		Message: fmt.Sprintf("candidate %d: member id %d has no name", index, member),
		Index:   index,
		Details: map[string]string{"member": strconv.Itoa(member)},
	}
}

func newZeroBudgetError(source string) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeZeroBudget,
		Message: "storage budget is zero",
		Source:  source,
	}
}
