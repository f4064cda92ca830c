package extract

import (
	"testing"

	"github.com/heartmarshall/myenglish-lexicon/internal/textnorm"
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	c := NewClassifier(DefaultBoilerplate, 1000)

	tests := []struct {
		line string
		want Classification
	}{
		{"", Classification{Noise: true, Reason: ReasonEmpty}},
		{"B2", Classification{Noise: true, Reason: ReasonLevelMarker}},
		{"C1", Classification{Noise: true, Reason: ReasonLevelMarker}},
		{".", Classification{Noise: true, Reason: ReasonPeriod}},
		{"3 / 12", Classification{Noise: true, Reason: ReasonPagination}},
		{"3/12", Classification{Noise: true, Reason: ReasonPagination}},
		{"42", Classification{Noise: true, Reason: ReasonPageNumber}},
		{"© Oxford University Press", Classification{Noise: true, Reason: ReasonBoilerplate}},
		{"The Oxford 5000 is the list of words", Classification{Noise: true, Reason: ReasonBoilerplate}},
		{"1500", Classification{}},
		{"B2 level", Classification{}},
		{"abandon v. B2", Classification{}},
		{"bass", Classification{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			if got := c.Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassifier_BoilerplateSurvivesNormalization(t *testing.T) {
	t.Parallel()

	c := NewClassifier(DefaultBoilerplate, 1000)
	for _, line := range textnorm.Lines("The Oxford 3000™ by CEFR level\nThe Oxford 5000™") {
		if got := c.Classify(line); got.Reason != ReasonBoilerplate {
			t.Errorf("Classify(%q) = %+v, want boilerplate", line, got)
		}
	}
}

func TestClassifier_CustomBoilerplate(t *testing.T) {
	t.Parallel()

	c := NewClassifier([]string{"Cambridge English", ""}, 10)

	if got := c.Classify("Cambridge English Vocabulary Profile"); got.Reason != ReasonBoilerplate {
		t.Errorf("custom fragment not matched: %+v", got)
	}
	if got := c.Classify("© Oxford University Press"); got.Noise {
		t.Errorf("default fragments should not apply: %+v", got)
	}
	if got := c.Classify("12"); got.Noise {
		t.Errorf("12 is above the page number threshold: %+v", got)
	}
}
