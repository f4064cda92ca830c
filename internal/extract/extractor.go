// Package extract turns the lines of a word-list document into normalized
// entries. It never fails: lines it cannot parse are counted and skipped.
package extract

import (
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

// Options configures an Extractor.
type Options struct {
	SampleLines    int
	PageNumberMax  int
	SkippedSamples int
	SplitLines     bool
	// ForceVariant skips detection when set.
	ForceVariant domain.Variant
	Boilerplate  []string
}

// DefaultOptions mirrors the config defaults.
func DefaultOptions() Options {
	return Options{
		SampleLines:    DefaultSampleLines,
		PageNumberMax:  1000,
		SkippedSamples: 20,
		SplitLines:     true,
		Boilerplate:    DefaultBoilerplate,
	}
}

// Result is the outcome of extracting one document.
type Result struct {
	Detection Detection
	// Variant is the pattern set that produced Entries. It differs from
	// Detection.Variant when detection was unknown or overridden.
	Variant domain.Variant
	Entries []domain.Entry
	Stats   Stats
}

// patternSet is the rule table for one layout variant.
type patternSet struct {
	variant      domain.Variant
	rules        []rule
	carriesLevel bool
	splitLines   bool
}

// scanState is the fold state threaded through the line loop.
type scanState struct {
	level domain.Level
}

// Extractor applies the variant-specific pattern set to a document.
type Extractor struct {
	opts       Options
	classifier *Classifier
}

// New creates an Extractor.
func New(opts Options) *Extractor {
	if opts.SampleLines <= 0 {
		opts.SampleLines = DefaultSampleLines
	}
	return &Extractor{
		opts:       opts,
		classifier: NewClassifier(opts.Boilerplate, opts.PageNumberMax),
	}
}

// Extract detects the layout of doc and extracts its entries. For an unknown
// layout every pattern set is tried and the one yielding the most entries
// wins; on a tie the earlier set is kept.
func (x *Extractor) Extract(doc domain.RawDocument) Result {
	det := Detect(doc.Lines, x.opts.SampleLines)

	variant := det.Variant
	if x.opts.ForceVariant != "" {
		variant = x.opts.ForceVariant
	}

	if variant != domain.VariantUnknown {
		res := x.run(doc, x.patternSet(variant))
		res.Detection = det
		return res
	}

	var best Result
	for i, v := range []domain.Variant{domain.VariantComplexCategory, domain.VariantGroupedByLevel, domain.VariantSimple} {
		res := x.run(doc, x.patternSet(v))
		if i == 0 || len(res.Entries) > len(best.Entries) {
			best = res
		}
	}
	best.Detection = det
	return best
}

func (x *Extractor) patternSet(v domain.Variant) patternSet {
	switch v {
	case domain.VariantGroupedByLevel:
		return patternSet{
			variant:      v,
			rules:        []rule{matchGrouped},
			carriesLevel: true,
		}
	case domain.VariantSimple:
		return patternSet{
			variant:    v,
			rules:      []rule{matchSingleCategory},
			splitLines: x.opts.SplitLines,
		}
	default:
		return patternSet{
			variant:    v,
			rules:      []rule{matchMultiCategory, matchSingleCategory, matchEmbeddedLevel},
			splitLines: x.opts.SplitLines,
		}
	}
}

func (x *Extractor) run(doc domain.RawDocument, set patternSet) Result {
	res := Result{Variant: set.variant, Stats: newStats(len(doc.Lines))}

	var st scanState
	for i := 0; i < len(doc.Lines); i++ {
		text := doc.Lines[i]

		cls := x.classifier.Classify(text)
		if cls.Noise {
			res.Stats.addNoise(cls.Reason)
			if set.carriesLevel && cls.Reason == ReasonLevelMarker {
				st = st.withLevel(text)
			}
			continue
		}
		res.Stats.Candidates++

		line := candidateAt(doc.Lines, i)
		m, consumed, ok := x.matchLine(set, st, line)
		if !ok {
			res.Stats.addSkipped(line, x.opts.SkippedSamples)
			continue
		}

		entries := buildEntries(doc.Name, set.variant, m, line, consumed)
		if len(entries) == 0 {
			res.Stats.addSkipped(line, x.opts.SkippedSamples)
			continue
		}
		res.Stats.addParsed(m.pattern, len(entries))
		res.Entries = append(res.Entries, entries...)
		i += consumed - 1
	}
	return res
}

// matchLine runs the rules in priority order and falls back to the split-line
// join. consumed is the number of physical lines the match covers.
func (x *Extractor) matchLine(set patternSet, st scanState, line domain.CandidateLine) (match, int, bool) {
	for _, r := range set.rules {
		if m, ok := r(line.Text, st.level); ok {
			return m, 1, true
		}
	}
	if set.splitLines && line.Next != nil {
		if m, ok := matchSplitLine(line.Text, *line.Next); ok {
			return m, 2, true
		}
	}
	return match{}, 0, false
}

func (s scanState) withLevel(text string) scanState {
	if lv, ok := domain.ParseLevel(text); ok {
		s.level = lv
	}
	return s
}

func candidateAt(lines []string, i int) domain.CandidateLine {
	c := domain.CandidateLine{Text: lines[i], Ordinal: i + 1}
	if i+1 < len(lines) {
		next := lines[i+1]
		c.Next = &next
	}
	return c
}

// buildEntries expands a match into the headword × pair product.
func buildEntries(source string, variant domain.Variant, m match, line domain.CandidateLine, consumed int) []domain.Entry {
	words := splitHeadwords(m.heads)
	if len(words) == 0 {
		return nil
	}

	original := line.Text
	if consumed == 2 && line.Next != nil {
		original = line.Text + " " + *line.Next
	}

	entries := make([]domain.Entry, 0, len(words)*len(m.pairs))
	for _, w := range words {
		for _, p := range m.pairs {
			entries = append(entries, domain.Entry{
				Word:         w,
				Category:     p.category,
				Level:        p.level,
				Source:       source,
				OriginalLine: original,
				Variant:      variant,
				Pattern:      m.pattern,
			})
		}
	}
	return entries
}
