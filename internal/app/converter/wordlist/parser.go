// Package wordlist parses plain word lists (CSV or one word per line).
// Pure function: file path in, domain structs out. No database dependencies.
package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

// Stats holds parser statistics for logging.
type Stats struct {
	Rows  int
	Empty int
}

// ParseResult holds parsed entries in file order.
type ParseResult struct {
	Entries []domain.DictEntry
	Stats   Stats
}

// Parse reads the first column of every row as a word; an optional second
// column is taken as the category. Rows starting with '#' are comments.
func Parse(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ParseResult{}, fmt.Errorf("word list %s: %w", path, domain.ErrInputMissing)
		}
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) (ParseResult, error) {
	var res ParseResult

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row: %w", err)
		}
		res.Stats.Rows++

		word := strings.TrimSpace(record[0])
		if word == "" {
			res.Stats.Empty++
			continue
		}

		e := domain.DictEntry{Word: word}
		if len(record) > 1 {
			e.Category = strings.TrimSpace(record[1])
		}
		res.Entries = append(res.Entries, e)
	}
	return res, nil
}
