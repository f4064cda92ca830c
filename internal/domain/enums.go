package domain

import "strings"

// Level is a CEFR proficiency tag. The zero value means "no level".
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists every level in ascending order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// Rank returns the 1-based position of the level on the scale, 0 for no level.
func (l Level) Rank() int {
	for i, lv := range Levels {
		if lv == l {
			return i + 1
		}
	}
	return 0
}

// Less reports whether l is an easier level than other.
// A missing level sorts after every real level.
func (l Level) Less(other Level) bool {
	lr, or := l.Rank(), other.Rank()
	if lr == 0 {
		return false
	}
	if or == 0 {
		return true
	}
	return lr < or
}

// ParseLevel accepts "b2", " B2 " etc. The second result is false for anything
// that is not exactly one level code.
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", false
	}
	return l, true
}

// Variant is the layout family of a source document.
type Variant string

const (
	VariantGroupedByLevel  Variant = "grouped_by_level"
	VariantInlineLevel     Variant = "inline_level"
	VariantComplexCategory Variant = "complex_category"
	VariantSimple          Variant = "simple"
	VariantUnknown         Variant = "unknown"
)

func (v Variant) String() string { return string(v) }

func (v Variant) IsValid() bool {
	switch v {
	case VariantGroupedByLevel, VariantInlineLevel, VariantComplexCategory, VariantSimple, VariantUnknown:
		return true
	}
	return false
}

// Pattern names the extraction rule that produced an entry.
type Pattern string

const (
	PatternMultiCategory  Pattern = "multi_category"
	PatternSingleCategory Pattern = "single_category"
	PatternEmbeddedLevel  Pattern = "embedded_level"
	PatternGrouped        Pattern = "grouped"
	PatternSplitLine      Pattern = "split_line"
)

func (p Pattern) String() string { return string(p) }
