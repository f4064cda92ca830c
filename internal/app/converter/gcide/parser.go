// Package gcide parses the GNU Collaborative International Dictionary of
// English (CIDE.A … CIDE.Z) into dictionary entries.
// Pure function: directory path in, domain structs out. No database dependencies.
package gcide

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/k3a/html2text"

	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
	"github.com/heartmarshall/myenglish-lexicon/internal/textnorm"
)

var (
	fileRe = regexp.MustCompile(`^CIDE\.[A-Z]$`)
	hwRe   = regexp.MustCompile(`(?i)<hw>(.*?)</hw>`)
	posRe  = regexp.MustCompile(`(?i)<pos>(.*?)</pos>`)
	defRe  = regexp.MustCompile(`(?i)<def>(.*?)</def>`)

	// Syllable breaks and accent marks inside headwords.
	markReplacer = strings.NewReplacer("*", "", `"`, "", "`", "")
)

// Stats holds parser statistics for logging.
type Stats struct {
	Files        int
	Blocks       int
	NoDefinition int
	BadHeadword  int
}

// ParseResult holds parsed entries in file order.
type ParseResult struct {
	Entries []domain.DictEntry
	Stats   Stats
}

// Parse reads every CIDE.<letter> file of dir in name order.
func Parse(dir string) (ParseResult, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return ParseResult{}, fmt.Errorf("gcide dir %s: %w", dir, domain.ErrInputMissing)
	}

	var names []string
	for _, f := range files {
		if !f.IsDir() && fileRe.MatchString(f.Name()) {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ParseResult{}, fmt.Errorf("no CIDE.* files in %s: %w", dir, domain.ErrInputMissing)
	}

	var res ParseResult
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return res, fmt.Errorf("read %s: %w", name, err)
		}
		res.Stats.Files++
		parseContent(string(raw), &res)
	}
	return res, nil
}

// parseContent splits flattened content into <hw> blocks. A block runs from
// one headword to the next; its first <pos> and <def> are taken.
func parseContent(content string, res *ParseResult) {
	text := textnorm.Flatten(content)
	heads := hwRe.FindAllStringSubmatchIndex(text, -1)

	for i, h := range heads {
		res.Stats.Blocks++
		end := len(text)
		if i+1 < len(heads) {
			end = heads[i+1][0]
		}
		block := text[h[1]:end]

		word, ok := headword(text[h[2]:h[3]])
		if !ok {
			res.Stats.BadHeadword++
			continue
		}

		e := domain.DictEntry{Word: word}
		if m := posRe.FindStringSubmatch(block); m != nil {
			e.Category = plain(m[1])
		}
		if m := defRe.FindStringSubmatch(block); m != nil {
			e.Definition = plain(m[1])
		}
		if e.Definition == "" {
			res.Stats.NoDefinition++
		}
		res.Entries = append(res.Entries, e)
	}
}

func headword(raw string) (string, bool) {
	w := domain.NormalizeText(markReplacer.Replace(plain(raw)))
	return w, w != ""
}

// plain converts an inline markup fragment to single-line text.
func plain(fragment string) string {
	return textnorm.Flatten(html2text.HTML2Text(fragment))
}
