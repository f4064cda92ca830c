// Package pdftext reads word-list documents into line-oriented raw documents.
// PDFs are reassembled into visual lines from positioned text runs; plain
// text files are taken as-is.
package pdftext

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
	"github.com/heartmarshall/myenglish-lexicon/internal/textnorm"
)

// Read loads the document at path. Files ending in .pdf are parsed as PDF,
// anything else is read as UTF-8 text.
func Read(path string) (domain.RawDocument, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.RawDocument{}, fmt.Errorf("%s: %w", path, domain.ErrInputMissing)
		}
		return domain.RawDocument{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return readPDF(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("read %s: %w", path, err)
	}
	return FromText(filepath.Base(path), string(raw)), nil
}

// FromText builds a document from already extracted text.
func FromText(name, text string) domain.RawDocument {
	return domain.RawDocument{Name: name, Lines: textnorm.Lines(text)}
}

func readPDF(path string) (doc domain.RawDocument, err error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("stat %s: %w", path, err)
	}

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("parse pdf %s: %w", path, err)
	}

	// The content stream parser panics on malformed input.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("extract text from %s: %v", path, rec)
		}
	}()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, line := range assembleLines(p.Content().Text) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	pages := r.NumPage()
	if _, err := f.Seek(0, io.SeekStart); err == nil {
		if n, err := api.PageCount(f, nil); err == nil {
			pages = n
		}
	}

	doc = FromText(filepath.Base(path), sb.String())
	doc.Pages = pages
	return doc, nil
}
