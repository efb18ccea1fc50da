package solution

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/solreport/internal/namemap"
	"github.com/roach88/solreport/internal/testutil"
)

const solutionHeader = `Problem:    storage
Rows:       4
Columns:    3 (3 integer, 3 binary)
Status:     INTEGER OPTIMAL

   No. Column name       Activity     Lower bound   Upper bound
------ ------------    ------------- ------------- -------------
`

// solutionFile renders decision values as glpsol column lines.
func solutionFile(values ...string) string {
	var b strings.Builder
	b.WriteString(solutionHeader)
	for i, v := range values {
		fmt.Fprintf(&b, "%6d build[%d]     *  %13s             0             1\n", i+1, i, v)
	}
	return b.String()
}

type runFixture struct {
	dir      string
	prefix   string
	solution string
}

// newRunFixture writes a consistent three-candidate run into a temp dir.
// Individual files can be overwritten through write.
func newRunFixture(t *testing.T) *runFixture {
	t.Helper()
	dir := t.TempDir()
	f := &runFixture{
		dir:      dir,
		prefix:   filepath.Join(dir, "run1_"),
		solution: filepath.Join(dir, "solution.out"),
	}
	f.write(t, CandidatesFile, "alice bob\ncarol\ndave alice\n")
	f.write(t, StorageFile, "5.0\n3.0\n7.0\n")
	f.write(t, TotalStorageFile, "20.0\n")
	f.write(t, ThresholdFile, "1.0\n")
	f.writeSolution(t, solutionFile("1", "0", "1"))
	return f
}

func (f *runFixture) write(t *testing.T, file, content string) {
	t.Helper()
	testutil.WriteFiles(t, f.dir, map[string]string{"run1_" + file: content})
}

func (f *runFixture) writeSolution(t *testing.T, content string) {
	t.Helper()
	testutil.WriteFiles(t, f.dir, map[string]string{"solution.out": content})
}

func testNames(t *testing.T) *namemap.Table {
	t.Helper()
	tbl, err := namemap.New(map[int]string{0: "alice", 1: "bob", 2: "carol", 3: "dave"})
	require.NoError(t, err)
	return tbl
}

func fixedRunID() func() string {
	return testutil.NewFixedRunIDs("run-test-0001").Next
}
