package wordlist

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

func TestParse_Reader(t *testing.T) {
	t.Parallel()

	input := "# Oxford 3000\n" +
		"a\n" +
		"abandon,v.\n" +
		"\n" +
		"  ability , n.\n" +
		",\n" +
		"\"about\",prep.\n"

	res, err := parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}

	want := []domain.DictEntry{
		{Word: "a"},
		{Word: "abandon", Category: "v."},
		{Word: "ability", Category: "n."},
		{Word: "about", Category: "prep."},
	}
	if diff := cmp.Diff(want, res.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if want := (Stats{Rows: 5, Empty: 1}); res.Stats != want {
		t.Errorf("stats = %+v, want %+v", res.Stats, want)
	}
}

func TestParse_Missing(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, domain.ErrInputMissing) {
		t.Errorf("Parse(missing) error = %v, want ErrInputMissing", err)
	}
}
