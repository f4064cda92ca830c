package extract

import "github.com/heartmarshall/myenglish-lexicon/internal/domain"

// DefaultSampleLines is how many leading lines the detector inspects.
const DefaultSampleLines = 100

// Detection is the detector verdict together with the signal counts it was
// based on.
type Detection struct {
	Variant      domain.Variant
	Sampled      int
	LevelMarkers int
	InlineLines  int
	ComplexLines int
}

// Detect classifies a document layout from its first sample lines.
//
//	level markers | inline lines | variant
//	yes           | no           | grouped_by_level
//	any           | yes          | inline_level, or complex_category when
//	              |              | several category+level pairs share a line
//	no            | no           | unknown
func Detect(lines []string, sample int) Detection {
	if sample <= 0 {
		sample = DefaultSampleLines
	}
	n := min(sample, len(lines))

	d := Detection{Sampled: n}
	for _, l := range lines[:n] {
		switch {
		case levelOnlyRe.MatchString(l):
			d.LevelMarkers++
		case inlineSignalRe.MatchString(l):
			d.InlineLines++
			if complexSignalRe.MatchString(l) {
				d.ComplexLines++
			}
		}
	}

	switch {
	case d.InlineLines > 0 && d.ComplexLines > 0:
		d.Variant = domain.VariantComplexCategory
	case d.InlineLines > 0:
		d.Variant = domain.VariantInlineLevel
	case d.LevelMarkers > 0:
		d.Variant = domain.VariantGroupedByLevel
	default:
		d.Variant = domain.VariantUnknown
	}
	return d
}
