// Package omw parses the Open Multilingual Wordnet English TSV export
// (gzip-compressed) into dictionary entries.
// Pure function: file path in, domain structs out. No database dependencies.
package omw

import (
	"bufio"
	"compress/gzip"
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
	Lines     int
	Comments  int
	Malformed int
}

// ParseResult holds parsed entries in file order.
type ParseResult struct {
	Entries []domain.DictEntry
	Stats   Stats
}

// Parse reads a gzip TSV with rows synset\tlemma\tpos\tdefinition. Lines
// starting with '#' and blank lines are skipped; pos and definition may be
// missing.
func Parse(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ParseResult{}, fmt.Errorf("omw file %s: %w", path, domain.ErrInputMissing)
		}
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return ParseResult{}, fmt.Errorf("gzip %s: %w", path, err)
	}
	defer gz.Close()

	return parse(gz)
}

func parse(r io.Reader) (ParseResult, error) {
	var res ParseResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		res.Stats.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			res.Stats.Comments++
			continue
		}

		fields := strings.SplitN(line, "\t", 4)
		if len(fields) < 2 || strings.TrimSpace(fields[1]) == "" {
			res.Stats.Malformed++
			continue
		}

		e := domain.DictEntry{
			Synset: strings.TrimSpace(fields[0]),
			Word:   strings.TrimSpace(fields[1]),
		}
		if len(fields) > 2 {
			e.Category = strings.TrimSpace(fields[2])
		}
		if len(fields) > 3 {
			e.Definition = strings.TrimSpace(fields[3])
		}
		res.Entries = append(res.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
