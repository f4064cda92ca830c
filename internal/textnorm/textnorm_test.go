package textnorm

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: " \n\t \r\n", want: ""},
		{name: "newlines collapse", in: "<hw>cat</hw>\n<pos>n.</pos>\n\n<def>a pet</def>", want: "<hw>cat</hw> <pos>n.</pos> <def>a pet</def>"},
		{name: "leading and trailing", in: "   abandon v. B2   ", want: "abandon v. B2"},
		{name: "nbsp folded", in: "abandon\u00a0\u00a0v.", want: "abandon v."},
		{name: "ligature expanded", in: "ﬁnance n. B1", want: "finance n. B1"},
		{name: "full width", in: "ＡＢＣ", want: "ABC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Flatten(tt.in); got != tt.want {
				t.Errorf("Flatten(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFlatten_LongInput(t *testing.T) {
	t.Parallel()

	// Larger than transform's internal buffers to exercise ErrShortDst/ErrShortSrc.
	word := "abandon   v.\n"
	in := strings.Repeat(word, 5000)
	got := Flatten(in)
	want := strings.TrimSpace(strings.Repeat("abandon v. ", 5000))
	if got != want {
		t.Fatalf("Flatten mismatch: len(got)=%d len(want)=%d", len(got), len(want))
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "blank lines dropped", in: "\n\n  \n", want: nil},
		{
			name: "order kept and trimmed",
			in:   "  A1 \n\nabout   prep.\r\nabove prep., adv.\rB2\n",
			want: []string{"A1", "about prep.", "above prep., adv.", "B2"},
		},
		{name: "trademark normalized", in: "The Oxford 3000™", want: []string{"The Oxford 3000TM"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Lines(tt.in)); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
