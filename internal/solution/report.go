package solution

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Report summarizes one validated solver run.
type Report struct {
	RunID         string      `json:"run_id,omitempty"`
	DecisionsRead int         `json:"decisions_read"`
	Selected      int         `json:"selected"`
	TotalCost     float64     `json:"total_cost"`
	TotalStorage  float64     `json:"total_storage"`
	StorageRatio  float64     `json:"storage_ratio"`
	T             float64     `json:"t"`
	Chosen        []Candidate `json:"chosen"`
}

// Candidate is one selected candidate.
type Candidate struct {
	Index   int      `json:"index"`
	Members []string `json:"members"`
}

// WriteText renders the report in its human-readable form: the summary
// lines followed by one line of space-joined member names per selected
// candidate, in index order.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "decisions read: %d\n", r.DecisionsRead)
	fmt.Fprintf(&b, "selected: %d\n", r.Selected)
	fmt.Fprintf(&b, "total cost: %s\n", formatFloat(r.TotalCost))
	fmt.Fprintf(&b, "storage used: %s of allocation (%s of %s)\n",
		formatFloat(r.StorageRatio), formatFloat(r.TotalCost), formatFloat(r.TotalStorage))
	fmt.Fprintf(&b, "threshold T: %s\n", formatFloat(r.T))
	for _, c := range r.Chosen {
		b.WriteString(strings.Join(c.Members, " "))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String implements fmt.Stringer with the text rendering.
func (r *Report) String() string {
	var b strings.Builder
	_ = r.WriteText(&b)
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
