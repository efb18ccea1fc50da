package namemap

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadText reads a name map from a text file with one "<index> <name>" entry
// per line. Blank lines and lines starting with '#' are ignored.
func LoadText(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open name map: %w", err)
	}
	defer f.Close()

	b := newBuilder(path)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, &MapError{
				Code:   ErrCodeBadEntry,
				Source: path,
				Line:   line,
				Detail: fmt.Sprintf("expected \"<index> <name>\", got %d fields", len(fields)),
			}
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &MapError{Code: ErrCodeBadEntry, Source: path, Line: line, Detail: fmt.Sprintf("bad index %q", fields[0])}
		}
		if err := b.add(line, id, fields[1]); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read name map: %w", err)
	}
	return b.table(), nil
}
