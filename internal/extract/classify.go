package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/myenglish-lexicon/internal/textnorm"
)

// NoiseReason names the predicate that marked a line as noise.
type NoiseReason string

const (
	ReasonNone        NoiseReason = ""
	ReasonEmpty       NoiseReason = "empty"
	ReasonLevelMarker NoiseReason = "level_marker"
	ReasonBoilerplate NoiseReason = "boilerplate"
	ReasonPagination  NoiseReason = "pagination"
	ReasonPageNumber  NoiseReason = "page_number"
	ReasonPeriod      NoiseReason = "period"
)

// DefaultBoilerplate are the publisher header and footer fragments found in
// the Oxford 3000/5000 word lists.
var DefaultBoilerplate = []string{
	"© Oxford University Press",
	"The Oxford 3000™",
	"The Oxford 5000™",
	"American English",
	"American Oxford",
	"The Oxford 3000 is the list",
	"The Oxford 5000 is the list",
	"from A1 to B2 level",
	"from A1 to C1 level",
	"additional 2000 words",
	"As well as the Oxford",
}

var (
	paginationRe = regexp.MustCompile(`^\d+\s*/\s*\d+$`)
	digitsRe     = regexp.MustCompile(`^\d+$`)
)

// Classification is the verdict for one line.
type Classification struct {
	Noise  bool
	Reason NoiseReason
}

// Classifier separates noise lines from candidate data lines.
type Classifier struct {
	boilerplate   []string
	pageNumberMax int
}

// NewClassifier builds a classifier. Boilerplate fragments are normalized the
// same way document lines are, so "™" in a fragment still matches after NFKC.
func NewClassifier(boilerplate []string, pageNumberMax int) *Classifier {
	frags := make([]string, 0, len(boilerplate))
	for _, b := range boilerplate {
		if f := textnorm.Flatten(b); f != "" {
			frags = append(frags, f)
		}
	}
	return &Classifier{boilerplate: frags, pageNumberMax: pageNumberMax}
}

// Classify reports whether line is noise. A line exactly equal to a level
// code is always noise; the grouped layout reads its level from the reason.
func (c *Classifier) Classify(line string) Classification {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return noise(ReasonEmpty)
	case levelOnlyRe.MatchString(line):
		return noise(ReasonLevelMarker)
	case line == ".":
		return noise(ReasonPeriod)
	case paginationRe.MatchString(line):
		return noise(ReasonPagination)
	case c.isPageNumber(line):
		return noise(ReasonPageNumber)
	case c.isBoilerplate(line):
		return noise(ReasonBoilerplate)
	}
	return Classification{}
}

func (c *Classifier) isPageNumber(line string) bool {
	if !digitsRe.MatchString(line) {
		return false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return false
	}
	return n < c.pageNumberMax
}

func (c *Classifier) isBoilerplate(line string) bool {
	for _, frag := range c.boilerplate {
		if strings.Contains(line, frag) {
			return true
		}
	}
	return false
}

func noise(r NoiseReason) Classification {
	return Classification{Noise: true, Reason: r}
}
