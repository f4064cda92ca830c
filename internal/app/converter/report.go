package converter

import (
	"io"

	"github.com/rodaine/table"
)

// PrintResults writes one row per phase that ran, in canonical order.
func PrintResults(w io.Writer, results map[string]PhaseResult) {
	tbl := table.New("Phase", "Parsed", "Skipped", "Written", "Output", "Duration", "Status").WithWriter(w)
	for _, phase := range AllPhases {
		r, ok := results[phase]
		if !ok {
			continue
		}
		status := "ok"
		if r.Err != nil {
			status = "error: " + r.Err.Error()
		}
		tbl.AddRow(phase, r.Parsed, r.Skipped, r.Written, r.Output, r.Duration.Round(1e6), status)
	}
	tbl.Print()
}
