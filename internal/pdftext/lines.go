package pdftext

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// assembleLines groups positioned text runs into visual lines, top to bottom
// and left to right. Runs whose baselines are within a fraction of the font
// size share a line; a space is inserted where the horizontal gap between
// runs is wider than a thin space.
func assembleLines(runs []pdf.Text) []string {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, 0, len(runs))
	for _, t := range runs {
		if t.S != "" {
			sorted = append(sorted, t)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sameRow(sorted[i], sorted[j]) {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y > sorted[j].Y
	})

	var (
		lines []string
		row   []pdf.Text
	)
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, joinRow(row))
			row = row[:0]
		}
	}
	for _, t := range sorted {
		if len(row) > 0 && !sameRow(row[0], t) {
			flush()
		}
		row = append(row, t)
	}
	flush()
	return lines
}

func sameRow(a, b pdf.Text) bool {
	return math.Abs(a.Y-b.Y) <= tolerance(a, b)
}

func tolerance(a, b pdf.Text) float64 {
	return math.Max(1, 0.3*math.Max(a.FontSize, b.FontSize))
}

func joinRow(row []pdf.Text) string {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

	var sb strings.Builder
	prevEnd := math.Inf(-1)
	for i, t := range row {
		if i > 0 {
			gap := t.X - prevEnd
			thin := math.Max(0.5, 0.15*t.FontSize)
			if gap > thin && !strings.HasSuffix(sb.String(), " ") && !strings.HasPrefix(t.S, " ") {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return strings.TrimSpace(sb.String())
}
