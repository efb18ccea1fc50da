package cli

import (
	"errors"
	"os"

	"github.com/roach88/solreport/internal/namemap"
	"github.com/roach88/solreport/internal/solution"
	"github.com/roach88/solreport/internal/tabular"
)

// Error code constants, unified across all CLI commands.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeInvalidConfig = "E002" // Config file or flag error
	ErrCodeNameMap       = "E003" // Name map could not be read
	ErrCodeNotFound      = "E005" // Path not found
	ErrCodeInvalidArgs   = "E006" // Bad positional arguments

	// Parameter file errors
	ErrCodeSchemaMismatch = "E101"
	ErrCodeParse          = "E102"
	ErrCodeUnknownName    = "E103"

	// Solution validation errors
	ErrCodeMalformedLine  = "E111"
	ErrCodeNonInteger     = "E112"
	ErrCodeLengthMismatch = "E113"
	ErrCodeNotScalar      = "E114"
	ErrCodeZeroBudget     = "E115"
	ErrCodeUnknownIndex   = "E116"
)

var loadErrorCodes = map[tabular.LoadErrorCode]string{
	tabular.ErrCodeSchemaMismatch: ErrCodeSchemaMismatch,
	tabular.ErrCodeParse:          ErrCodeParse,
	tabular.ErrCodeUnknownName:    ErrCodeUnknownName,
}

var validationErrorCodes = map[solution.ValidationErrorCode]string{
	solution.ErrCodeMalformedLine:  ErrCodeMalformedLine,
	solution.ErrCodeNonInteger:     ErrCodeNonInteger,
	solution.ErrCodeLengthMismatch: ErrCodeLengthMismatch,
	solution.ErrCodeNotScalar:      ErrCodeNotScalar,
	solution.ErrCodeZeroBudget:     ErrCodeZeroBudget,
	solution.ErrCodeUnknownIndex:   ErrCodeUnknownIndex,
}

// classifyError maps a failure to its CLI error and exit code. Bad input
// data exits with ExitFailure; problems locating or configuring inputs exit
// with ExitCommandError.
func classifyError(err error) (*CLIError, int) {
	var (
		le *tabular.LoadError
		ve *solution.ValidationError
		me *namemap.MapError
	)
	switch {
	case errors.As(err, &le):
		return &CLIError{
			Code:    loadErrorCodes[le.Code],
			Kind:    string(le.Code),
			Message: err.Error(),
			Details: map[string]any{"path": le.Path, "line": le.Line, "column": le.Column, "token": le.Token},
		}, ExitFailure
	case errors.As(err, &ve):
		details := map[string]any{"index": ve.Index}
		if ve.Line > 0 {
			details["line"] = ve.Line
			details["raw"] = ve.Raw
		}
		for k, v := range ve.Details {
			details[k] = v
		}
		return &CLIError{
			Code:    validationErrorCodes[ve.Code],
			Kind:    string(ve.Code),
			Message: err.Error(),
			Details: details,
		}, ExitFailure
	case errors.As(err, &me):
		return &CLIError{Code: ErrCodeNameMap, Kind: string(me.Code), Message: err.Error()}, ExitCommandError
	case errors.Is(err, os.ErrNotExist):
		return &CLIError{Code: ErrCodeNotFound, Message: err.Error()}, ExitCommandError
	default:
		return &CLIError{Code: ErrCodeGeneric, Message: err.Error()}, ExitCommandError
	}
}

// fail reports err through the formatter and returns the matching ExitError.
func fail(formatter *OutputFormatter, message string, err error) error {
	ce, code := classifyError(err)
	_ = formatter.Error(ce)
	return WrapExitError(code, message, err)
}
