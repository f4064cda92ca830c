package loader

import (
	"fmt"
	"io"
	"sort"

	"github.com/rodaine/table"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
	"github.com/heartmarshall/myenglish-lexicon/internal/extract"
)

// PrintSummary writes one row per document.
func PrintSummary(w io.Writer, results []DocumentResult) {
	tbl := table.New("Document", "Variant", "Lines", "Entries", "Inserted", "Failed", "Skipped", "Table", "Status").WithWriter(w)
	for _, r := range results {
		tbl.AddRow(r.Document, r.Result.Variant, r.Lines, len(r.Result.Entries), r.Inserted, r.Failed, r.Result.Stats.Skipped, r.Table, status(r))
	}
	tbl.Print()
}

// PrintDistribution writes the level distribution of every written table.
func PrintDistribution(w io.Writer, results []DocumentResult) {
	tbl := table.New("Table", "Level", "Count").WithWriter(w)
	for _, r := range results {
		for _, lc := range r.Distribution {
			level := string(lc.Level)
			if level == "" {
				level = "-"
			}
			tbl.AddRow(r.Table, level, lc.Count)
		}
	}
	tbl.Print()
}

// PrintAnalysis writes the detection signals, noise and pattern counts and
// the skipped line samples of one document.
func PrintAnalysis(w io.Writer, r DocumentResult) {
	d := r.Result.Detection
	s := r.Result.Stats
	fmt.Fprintf(w, "== %s (pages: %d, lines: %d)\n", r.Document, r.Pages, r.Lines)
	fmt.Fprintf(w, "detected: %s (sampled %d: level markers %d, inline %d, complex %d), used: %s\n",
		d.Variant, d.Sampled, d.LevelMarkers, d.InlineLines, d.ComplexLines, r.Result.Variant)

	tbl := table.New("Kind", "Name", "Count").WithWriter(w)
	for _, reason := range sortedKeys(s.NoiseByReason) {
		tbl.AddRow("noise", reason, s.NoiseByReason[extract.NoiseReason(reason)])
	}
	for _, p := range sortedKeys(s.ByPattern) {
		tbl.AddRow("pattern", p, s.ByPattern[domain.Pattern(p)])
	}
	tbl.AddRow("total", "candidates", s.Candidates)
	tbl.AddRow("total", "parsed", s.Parsed)
	tbl.AddRow("total", "skipped", s.Skipped)
	tbl.AddRow("total", "entries", s.Entries)
	tbl.Print()

	if len(s.SkippedSamples) > 0 {
		fmt.Fprintln(w, "skipped lines:")
		for _, sl := range s.SkippedSamples {
			fmt.Fprintf(w, "  %5d  %s\n", sl.Ordinal, sl.Text)
		}
	}
}

func status(r DocumentResult) string {
	switch {
	case r.IsEmpty():
		return "empty"
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Table != "" && r.Inserted == 0 && r.Failed == 0:
		return "dry-run"
	}
	return "ok"
}

func sortedKeys[K ~string, V any](m map[K]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
