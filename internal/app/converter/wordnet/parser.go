// Package wordnet parses the Princeton WordNet 3.x Prolog distribution
// (wn_s.pl senses, optional wn_g.pl glosses) into dictionary entries.
// Pure function: directory path in, domain structs out. No database dependencies.
package wordnet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

const (
	sensesFile  = "wn_s.pl"
	glossesFile = "wn_g.pl"
)

var (
	// s(synset_id,w_num,'lemma',ss_type,sense_number,tag_count).
	senseRe = regexp.MustCompile(`^s\((\d+),\d+,'((?:[^']|'')+)',([a-z]),\d+,\d+\)\.$`)
	// g(synset_id,'gloss').
	glossRe = regexp.MustCompile(`^g\((\d+),'((?:[^']|'')*)'\)\.$`)
)

// Stats holds parser statistics for logging.
type Stats struct {
	Lines     int
	Senses    int
	Malformed int
	Glosses   int
	NoGloss   int
}

// ParseResult holds parsed entries in file order.
type ParseResult struct {
	Entries []domain.DictEntry
	Stats   Stats
}

// Parse reads wn_s.pl from dir and attaches glosses from wn_g.pl when that
// file is present.
func Parse(dir string) (ParseResult, error) {
	var res ParseResult

	glosses, err := readGlosses(filepath.Join(dir, glossesFile))
	if err != nil {
		return res, err
	}
	res.Stats.Glosses = len(glosses)

	f, err := os.Open(filepath.Join(dir, sensesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, fmt.Errorf("%s in %s: %w", sensesFile, dir, domain.ErrInputMissing)
		}
		return res, fmt.Errorf("open %s: %w", sensesFile, err)
	}
	defer f.Close()

	err = scanFacts(f, "s(", func(line string) {
		res.Stats.Lines++
		m := senseRe.FindStringSubmatch(line)
		if m == nil {
			res.Stats.Malformed++
			return
		}
		e := domain.DictEntry{
			Word:     unquote(m[2]),
			Category: m[3],
			Synset:   m[1],
		}
		if g, ok := glosses[m[1]]; ok {
			e.Definition = g
		} else if glosses != nil {
			res.Stats.NoGloss++
		}
		res.Stats.Senses++
		res.Entries = append(res.Entries, e)
	})
	if err != nil {
		return res, fmt.Errorf("scan %s: %w", sensesFile, err)
	}
	return res, nil
}

// readGlosses returns synset id → gloss, or nil when the file is absent.
func readGlosses(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", glossesFile, err)
	}
	defer f.Close()

	glosses := make(map[string]string)
	err = scanFacts(f, "g(", func(line string) {
		if m := glossRe.FindStringSubmatch(line); m != nil {
			glosses[m[1]] = unquote(m[2])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", glossesFile, err)
	}
	return glosses, nil
}

func scanFacts(r io.Reader, prefix string, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, prefix) {
			fn(line)
		}
	}
	return scanner.Err()
}

func unquote(s string) string {
	return strings.ReplaceAll(s, "''", "'")
}
