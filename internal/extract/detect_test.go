package extract

import (
	"testing"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  domain.Variant
	}{
		{
			name:  "grouped by level",
			lines: []string{"A1", "a, an indefinite article", "about prep.", "A2", "ability n."},
			want:  domain.VariantGroupedByLevel,
		},
		{
			name:  "inline level",
			lines: []string{"abandon v. B2", "ability n. A2", "about prep., adv. A1"},
			want:  domain.VariantInlineLevel,
		},
		{
			name:  "complex category",
			lines: []string{"abandon v. B2", "account n. B1, v. B2"},
			want:  domain.VariantComplexCategory,
		},
		{
			name:  "inline wins over level markers",
			lines: []string{"B2", "abandon v. B2"},
			want:  domain.VariantInlineLevel,
		},
		{
			name:  "nothing recognizable",
			lines: []string{"hello world", "apple n."},
			want:  domain.VariantUnknown,
		},
		{
			name:  "empty",
			lines: nil,
			want:  domain.VariantUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Detect(tt.lines, DefaultSampleLines).Variant; got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect_EveryLevelLineGrouped(t *testing.T) {
	t.Parallel()

	var lines []string
	for _, lv := range domain.Levels {
		lines = append(lines, lv.String(), "word n.", "other adj., adv.")
	}
	d := Detect(lines, 0)
	if d.Variant != domain.VariantGroupedByLevel {
		t.Fatalf("Detect() = %q, want grouped_by_level", d.Variant)
	}
	if d.LevelMarkers != len(domain.Levels) {
		t.Errorf("level markers = %d, want %d", d.LevelMarkers, len(domain.Levels))
	}
}

func TestDetect_SampleWindow(t *testing.T) {
	t.Parallel()

	lines := []string{"A1", "apple n.", "B1", "abandon v. B2"}

	if got := Detect(lines, 3).Variant; got != domain.VariantGroupedByLevel {
		t.Errorf("sample 3: got %q, want grouped_by_level", got)
	}
	if got := Detect(lines, 4).Variant; got != domain.VariantInlineLevel {
		t.Errorf("sample 4: got %q, want inline_level", got)
	}
	if got := Detect(lines, 3).Sampled; got != 3 {
		t.Errorf("sampled = %d, want 3", got)
	}
}
