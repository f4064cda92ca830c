package domain

import "testing"

func TestLevel_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  bool
	}{
		{LevelA1, true},
		{LevelA2, true},
		{LevelB1, true},
		{LevelB2, true},
		{LevelC1, true},
		{LevelC2, true},
		{Level("C3"), false},
		{Level("b1"), false},
		{Level(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			if got := tt.level.IsValid(); got != tt.want {
				t.Errorf("Level(%q).IsValid() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"B2", LevelB2, true},
		{" b2 ", LevelB2, true},
		{"a1", LevelA1, true},
		{"B", "", false},
		{"B2.", "", false},
		{"D1", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLevel_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Level
		want bool
	}{
		{"A1 before B2", LevelA1, LevelB2, true},
		{"C2 after B1", LevelC2, LevelB1, false},
		{"equal", LevelB1, LevelB1, false},
		{"level before none", LevelC2, "", true},
		{"none after level", "", LevelA1, false},
		{"none vs none", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("%q.Less(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevel_RankOrder(t *testing.T) {
	t.Parallel()
	for i, lv := range Levels {
		if got := lv.Rank(); got != i+1 {
			t.Errorf("%s.Rank() = %d, want %d", lv, got, i+1)
		}
	}
	if got := Level("").Rank(); got != 0 {
		t.Errorf("empty level rank = %d, want 0", got)
	}
}

func TestVariant_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant Variant
		want    bool
	}{
		{VariantGroupedByLevel, true},
		{VariantInlineLevel, true},
		{VariantComplexCategory, true},
		{VariantSimple, true},
		{VariantUnknown, true},
		{Variant("tabular"), false},
		{Variant(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			t.Parallel()
			if got := tt.variant.IsValid(); got != tt.want {
				t.Errorf("Variant(%q).IsValid() = %v, want %v", tt.variant, got, tt.want)
			}
		})
	}
}

func TestPattern_String(t *testing.T) {
	t.Parallel()
	if got := PatternSplitLine.String(); got != "split_line" {
		t.Errorf("got %q, want split_line", got)
	}
}
