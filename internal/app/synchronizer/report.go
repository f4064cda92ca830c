package synchronizer

import (
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"
)

// Print writes the outcome counts followed by at most limit words per
// outcome.
func (r *Report) Print(w io.Writer, limit int) {
	mode := "applied"
	if r.DryRun {
		mode = "dry run, rolled back"
	}
	fmt.Fprintf(w, "sync from %s (%d rows read, %s, %s)\n", r.Source, r.Read, mode, r.Duration.Round(1e6))

	tbl := table.New("Outcome", "Count", "Words").WithWriter(w)
	tbl.AddRow("updated", len(r.Updated), preview(r.Updated, limit))
	tbl.AddRow("inserted", len(r.Inserted), preview(r.Inserted, limit))
	tbl.AddRow("unchanged", len(r.Unchanged), preview(r.Unchanged, limit))
	tbl.Print()
}

func preview(words []string, limit int) string {
	if len(words) <= limit {
		return strings.Join(words, ", ")
	}
	return strings.Join(words[:limit], ", ") + fmt.Sprintf(", ... (+%d)", len(words)-limit)
}
