package extract

import "github.com/heartmarshall/myenglish-lexicon/internal/domain"

// SkippedLine is a candidate line no rule could parse.
type SkippedLine struct {
	Ordinal int
	Text    string
}

// Stats are diagnostic counters for one extraction run.
type Stats struct {
	Lines         int
	Noise         int
	NoiseByReason map[NoiseReason]int
	Candidates    int
	Parsed        int
	Skipped       int
	Entries       int
	ByPattern     map[domain.Pattern]int
	// SkippedSamples holds the first skipped lines, up to the configured limit.
	SkippedSamples []SkippedLine
}

func newStats(lines int) Stats {
	return Stats{
		Lines:         lines,
		NoiseByReason: make(map[NoiseReason]int),
		ByPattern:     make(map[domain.Pattern]int),
	}
}

func (s *Stats) addNoise(r NoiseReason) {
	s.Noise++
	s.NoiseByReason[r]++
}

func (s *Stats) addParsed(p domain.Pattern, entries int) {
	s.Parsed++
	s.Entries += entries
	s.ByPattern[p] += entries
}

func (s *Stats) addSkipped(line domain.CandidateLine, limit int) {
	s.Skipped++
	if len(s.SkippedSamples) < limit {
		s.SkippedSamples = append(s.SkippedSamples, SkippedLine{Ordinal: line.Ordinal, Text: line.Text})
	}
}
