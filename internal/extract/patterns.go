package extract

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

// Building blocks shared by the detector and the extraction rules.
//
// A category term is a dotted abbreviation ("n.", "adj.") or one of the
// spelled-out categories used by the Oxford lists ("article", "number",
// "marker"), optionally preceded by a single qualifier ("indefinite article",
// "modal v.", "infinitive marker"). Category terms match in any case
// ("V.", "Adj.") and are stored lowercased; level codes stay upper case.
const (
	levelExpr     = `[ABC][12]`
	qualifierExpr = `(?:indefinite|definite|modal|auxiliary|linking|ordinal|infinitive)\s+`
	catTermExpr   = `(?i:(?:` + qualifierExpr + `)?(?:[a-z]+\.|article|number|marker))`
	catListExpr   = catTermExpr + `(?:,\s*` + catTermExpr + `)*`
	headExpr      = `[A-Za-z][A-Za-z\s,\-']*?`
)

var (
	levelOnlyRe = regexp.MustCompile(`^` + levelExpr + `$`)
	levelAnyRe  = regexp.MustCompile(`\b(` + levelExpr + `)\b`)

	inlineSignalRe  = regexp.MustCompile(`^` + headExpr + `\s+` + catListExpr + `\s*` + levelExpr + `\b`)
	complexSignalRe = regexp.MustCompile(levelExpr + `\s*,\s*` + catTermExpr)

	multiRe    = regexp.MustCompile(`^(` + headExpr + `)\s+((?:` + catTermExpr + `\s*` + levelExpr + `(?:,\s*)?)+)$`)
	pairRe     = regexp.MustCompile(`(` + catTermExpr + `)\s*(` + levelExpr + `)`)
	singleRe   = regexp.MustCompile(`^(` + headExpr + `)\s+(` + catListExpr + `)(?:\s*(` + levelExpr + `))?$`)
	embeddedRe = regexp.MustCompile(`^(` + headExpr + `)\s+(` + catTermExpr + `.*)$`)
	groupedRe  = regexp.MustCompile(`^(` + headExpr + `)\s+(` + catListExpr + `)$`)

	bareWordRe  = regexp.MustCompile(`^[A-Za-z](?:[A-Za-z'\-]|\s[A-Za-z])*$`)
	splitTailRe = regexp.MustCompile(`^(` + catListExpr + `)(?:\s*(` + levelExpr + `))?$`)

	segmentSplitRe = regexp.MustCompile(`,\s*`)
)

// catLevel is one (category, level) pair attached to the headwords of a line.
type catLevel struct {
	category string
	level    domain.Level
}

// match is what a rule extracted from one line before headword validation.
type match struct {
	heads   string
	pairs   []catLevel
	pattern domain.Pattern
}

// rule tries to match one line. The carried level is only meaningful for the
// grouped layout.
type rule func(text string, carried domain.Level) (match, bool)

func matchMultiCategory(text string, _ domain.Level) (match, bool) {
	m := multiRe.FindStringSubmatch(text)
	if m == nil {
		return match{}, false
	}
	var pairs []catLevel
	for _, p := range pairRe.FindAllStringSubmatch(m[2], -1) {
		lv, _ := domain.ParseLevel(p[2])
		pairs = append(pairs, catLevel{category: normalizeCategory(p[1]), level: lv})
	}
	if len(pairs) == 0 {
		return match{}, false
	}
	pattern := domain.PatternMultiCategory
	if len(pairs) == 1 {
		pattern = domain.PatternSingleCategory
	}
	return match{heads: m[1], pairs: pairs, pattern: pattern}, true
}

func matchSingleCategory(text string, _ domain.Level) (match, bool) {
	m := singleRe.FindStringSubmatch(text)
	if m == nil {
		return match{}, false
	}
	lv, _ := domain.ParseLevel(m[3])
	return match{
		heads:   m[1],
		pairs:   []catLevel{{category: normalizeCategory(m[2]), level: lv}},
		pattern: domain.PatternSingleCategory,
	}, true
}

// matchEmbeddedLevel is the last-resort rule: the remainder after the
// headwords is split on commas and a current category is carried from
// segment to segment. A segment without a level code replaces the current
// category; a segment with one emits a pair.
func matchEmbeddedLevel(text string, _ domain.Level) (match, bool) {
	m := embeddedRe.FindStringSubmatch(text)
	if m == nil || !levelAnyRe.MatchString(m[2]) {
		return match{}, false
	}

	var (
		current string
		pairs   []catLevel
	)
	for _, seg := range segmentSplitRe.Split(m[2], -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		loc := levelAnyRe.FindStringSubmatchIndex(seg)
		if loc == nil {
			current = normalizeCategory(seg)
			continue
		}
		lv, _ := domain.ParseLevel(seg[loc[2]:loc[3]])
		if cat := normalizeCategory(seg[:loc[0]] + seg[loc[1]:]); cat != "" {
			current = cat
		}
		pairs = append(pairs, catLevel{category: current, level: lv})
	}
	if len(pairs) == 0 {
		return match{}, false
	}
	return match{heads: m[1], pairs: pairs, pattern: domain.PatternEmbeddedLevel}, true
}

func matchGrouped(text string, carried domain.Level) (match, bool) {
	m := groupedRe.FindStringSubmatch(text)
	if m == nil {
		return match{}, false
	}
	return match{
		heads:   m[1],
		pairs:   []catLevel{{category: normalizeCategory(m[2]), level: carried}},
		pattern: domain.PatternGrouped,
	}, true
}

// matchSplitLine joins a bare headword line with a following
// "category [level]" line.
func matchSplitLine(text, next string) (match, bool) {
	if !bareWordRe.MatchString(text) {
		return match{}, false
	}
	m := splitTailRe.FindStringSubmatch(next)
	if m == nil {
		return match{}, false
	}
	lv, _ := domain.ParseLevel(m[2])
	return match{
		heads:   text,
		pairs:   []catLevel{{category: normalizeCategory(m[1]), level: lv}},
		pattern: domain.PatternSplitLine,
	}, true
}

func normalizeCategory(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// splitHeadwords splits a headword field on commas and keeps the tokens that
// are valid words.
func splitHeadwords(field string) []string {
	var words []string
	for _, tok := range strings.Split(field, ",") {
		if w, ok := domain.NormalizeWord(tok); ok {
			words = append(words, w)
		}
	}
	return words
}
