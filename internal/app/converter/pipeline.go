// Package converter turns non-PDF dictionary sources into JSON arrays of
// dictionary entries and merges those arrays into the dict_entries table.
package converter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/heartmarshall/myenglish-lexicon/internal/app"
	"github.com/heartmarshall/myenglish-lexicon/internal/app/converter/gcide"
	"github.com/heartmarshall/myenglish-lexicon/internal/app/converter/omw"
	"github.com/heartmarshall/myenglish-lexicon/internal/app/converter/wordlist"
	"github.com/heartmarshall/myenglish-lexicon/internal/app/converter/wordnet"
	"github.com/heartmarshall/myenglish-lexicon/internal/config"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

// AllPhases defines the canonical execution order.
var AllPhases = []string{"gcide", "wordnet", "omw", "wordlist"}

// PhaseResult holds the outcome of a single phase.
type PhaseResult struct {
	Parsed   int
	Skipped  int
	Written  int
	Output   string
	Duration time.Duration
	Err      error
}

// Pipeline runs the conversion phases.
type Pipeline struct {
	log     *slog.Logger
	cfg     config.ConvertConfig
	dryRun  bool
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline. In dry-run mode sources are parsed
// but no JSON is written.
func NewPipeline(log *slog.Logger, cfg config.ConvertConfig, dryRun bool) *Pipeline {
	return &Pipeline{
		log:     log,
		cfg:     cfg,
		dryRun:  dryRun,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	return hasErrors(p.results)
}

// Run executes the phases. If phases is non-empty, only the listed phases
// run, still in canonical order. Unknown names are rejected up front.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(AllPhases, phases)
	if err != nil {
		return err
	}
	log := app.RunLogger(ctx, p.log)

	if !p.dryRun {
		if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		log.Info("starting phase", slog.String("phase", phase))

		entries, skipped, err := p.parse(phase)
		result := PhaseResult{Parsed: len(entries), Skipped: skipped, Err: err}
		if err == nil && !p.dryRun {
			result.Output = filepath.Join(p.cfg.OutputDir, phase+".json")
			result.Err = writeJSON(result.Output, entries)
			if result.Err == nil {
				result.Written = len(entries)
			}
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("parsed", result.Parsed),
				slog.Int("skipped", result.Skipped),
				slog.String("output", result.Output),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	log.Info("conversion completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func (p *Pipeline) parse(phase string) ([]domain.DictEntry, int, error) {
	switch phase {
	case "gcide":
		res, err := gcide.Parse(p.cfg.GCIDEDir)
		return res.Entries, res.Stats.BadHeadword + res.Stats.NoDefinition, err
	case "wordnet":
		res, err := wordnet.Parse(p.cfg.WordNetDir)
		return res.Entries, res.Stats.Malformed, err
	case "omw":
		res, err := omw.Parse(p.cfg.OMWFile)
		return res.Entries, res.Stats.Malformed, err
	case "wordlist":
		res, err := wordlist.Parse(p.cfg.WordlistFile)
		return res.Entries, res.Stats.Empty, err
	}
	return nil, 0, fmt.Errorf("unknown phase %q", phase)
}

func writeJSON(path string, entries []domain.DictEntry) error {
	if entries == nil {
		entries = []domain.DictEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func selectPhases(all, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return all, nil
	}
	for _, ph := range requested {
		if !slices.Contains(all, ph) {
			return nil, fmt.Errorf("unknown phase %q: %w", ph, domain.ErrValidation)
		}
	}
	var filtered []string
	for _, ph := range all {
		if slices.Contains(requested, ph) {
			filtered = append(filtered, ph)
		}
	}
	return filtered, nil
}

func hasErrors(results map[string]PhaseResult) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
