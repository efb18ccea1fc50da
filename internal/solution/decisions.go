package solution

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/roach88/solreport/internal/tabular"
)

const (
	// decisionMarker selects the lines that carry build decisions.
	decisionMarker = "build["

	decisionTokens = 6
	decisionColumn = 3 // 0-based position of the value token

	// maxLineSize matches the tabular loader; solver listings can carry
	// very long header or constraint lines.
	maxLineSize = 4 << 20
)

// LoadDecisions reads the decision values from a solver output file.
func LoadDecisions(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open solution file: %w", err)
	}
	defer f.Close()

	return ParseDecisions(f, path)
}

// ParseDecisions scans solver output and returns one decision per "build["
// line, in encounter order. source names r in errors.
//
// A value token that parses as an integer, or as a float with no fractional
// part, is accepted as-is; range checking against {0, 1} is left to the
// report. A fractional value (an LP relaxation leaking through) fails
// immediately with NON_INTEGER_SOLUTION.
func ParseDecisions(r io.Reader, source string) ([]int, error) {
	var decisions []int

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		if !strings.Contains(strings.ToLower(raw), decisionMarker) {
			continue
		}

		fields := strings.Fields(raw)
		if len(fields) != decisionTokens {
			return nil, newMalformedLineError(source, line, raw, len(fields))
		}

		tok := fields[decisionColumn]
		v, integral, err := parseDecision(tok)
		if err != nil {
			return nil, &tabular.LoadError{
				Code:   tabular.ErrCodeParse,
				Path:   source,
				Line:   line,
				Column: decisionColumn + 1,
				Token:  tok,
				Err:    err,
			}
		}
		if !integral {
			ve := newNonIntegerError(len(decisions), v)
			ve.Source = source
			ve.Line = line
			ve.Raw = raw
			return nil, ve
		}
		decisions = append(decisions, int(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read solution file: %w", err)
	}
	return decisions, nil
}

// parseDecision reads a value token. integral is false when the token is a
// valid number with a fractional part (or is not finite).
func parseDecision(tok string) (v float64, integral bool, err error) {
	if i, err := strconv.Atoi(tok); err == nil {
		return float64(i), true, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return f, false, nil
	}
	return f, true, nil
}
