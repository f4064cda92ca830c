package pdftext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ledongthuc/pdf"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

// glyphs lays out s one rune per run, each w points wide, starting at x.
func glyphs(s string, x, y, w float64) []pdf.Text {
	var out []pdf.Text
	for _, r := range s {
		out = append(out, pdf.Text{S: string(r), X: x, Y: y, W: w, FontSize: 10})
		x += w
	}
	return out
}

func TestAssembleLines(t *testing.T) {
	t.Parallel()

	var runs []pdf.Text
	// Second visual line first, to check ordering by Y.
	runs = append(runs, glyphs("ability", 50, 680, 5)...)
	runs = append(runs, glyphs("n.", 100, 680.4, 5)...)
	runs = append(runs, glyphs("A2", 130, 679.8, 5)...)
	runs = append(runs, glyphs("abandon", 50, 700, 5)...)
	runs = append(runs, glyphs("v.", 100, 700, 5)...)
	runs = append(runs, glyphs("B2", 130, 700, 5)...)
	runs = append(runs, pdf.Text{S: "", X: 0, Y: 650, FontSize: 10})

	want := []string{"abandon v. B2", "ability n. A2"}
	if diff := cmp.Diff(want, assembleLines(runs)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleLines_WordRuns(t *testing.T) {
	t.Parallel()

	runs := []pdf.Text{
		{S: "B2", X: 200, Y: 500, W: 12, FontSize: 10},
		{S: "account ", X: 50, Y: 500, W: 40, FontSize: 10},
		{S: "n.", X: 90, Y: 500, W: 8, FontSize: 10},
		{S: "B1,", X: 110, Y: 500, W: 15, FontSize: 10},
		{S: "v.", X: 130, Y: 500, W: 8, FontSize: 10},
	}
	want := []string{"account n. B1, v. B2"}
	if diff := cmp.Diff(want, assembleLines(runs)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleLines_Empty(t *testing.T) {
	t.Parallel()
	if got := assembleLines(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestRead_Missing(t *testing.T) {
	t.Parallel()

	_, err := Read(filepath.Join(t.TempDir(), "nope.pdf"))
	if !errors.Is(err, domain.ErrInputMissing) {
		t.Fatalf("expected ErrInputMissing, got %v", err)
	}
}

func TestRead_TextFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte("A1\r\n  about   prep.\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := domain.RawDocument{Name: "list.txt", Lines: []string{"A1", "about prep."}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_CorruptPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}
