package converter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/myenglish-lexicon/internal/app"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

// DictRepo persists dictionary entries per source.
type DictRepo interface {
	DeleteBySource(ctx context.Context, source string) (int64, error)
	Insert(ctx context.Context, source string, entries []domain.DictEntry) (int, error)
}

// TxRunner runs fn inside one transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MergeSource is one JSON array file and the source name its rows get.
type MergeSource struct {
	Name string
	Path string
}

// Merger loads converted JSON arrays into the dict_entries table.
type Merger struct {
	log       *slog.Logger
	repo      DictRepo
	txm       TxRunner
	batchSize int
	results   map[string]PhaseResult
}

// NewMerger creates a new Merger.
func NewMerger(log *slog.Logger, repo DictRepo, txm TxRunner, batchSize int) *Merger {
	return &Merger{
		log:       log,
		repo:      repo,
		txm:       txm,
		batchSize: batchSize,
		results:   make(map[string]PhaseResult),
	}
}

// SourcesIn returns the merge sources for phases whose JSON output exists
// in dir, in canonical phase order.
func SourcesIn(dir string, phases []string) ([]MergeSource, error) {
	toRun, err := selectPhases(AllPhases, phases)
	if err != nil {
		return nil, err
	}
	var out []MergeSource
	for _, ph := range toRun {
		path := filepath.Join(dir, ph+".json")
		if _, err := os.Stat(path); err == nil {
			out = append(out, MergeSource{Name: ph, Path: path})
		}
	}
	return out, nil
}

// Results returns per-source results after Run completes.
func (m *Merger) Results() map[string]PhaseResult {
	return m.results
}

// HasErrors returns true if any source failed.
func (m *Merger) HasErrors() bool {
	return hasErrors(m.results)
}

// Run merges each source in its own transaction: previous rows of the
// source are deleted, then the file's entries are inserted. A failing
// source is rolled back and the next one is processed.
func (m *Merger) Run(ctx context.Context, sources []MergeSource) {
	log := app.RunLogger(ctx, m.log)

	for _, src := range sources {
		start := time.Now()
		result := m.mergeOne(ctx, src)
		result.Duration = time.Since(start)
		result.Output = src.Path
		m.results[src.Name] = result

		if result.Err != nil {
			log.Warn("merge failed", slog.String("source", src.Name), slog.String("error", result.Err.Error()))
			continue
		}
		log.Info("source merged",
			slog.String("source", src.Name),
			slog.Int("written", result.Written),
			slog.Int("replaced", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}
}

func (m *Merger) mergeOne(ctx context.Context, src MergeSource) PhaseResult {
	entries, err := readJSON(src.Path)
	if err != nil {
		return PhaseResult{Err: err}
	}
	result := PhaseResult{Parsed: len(entries)}

	err = m.txm.RunInTx(ctx, func(ctx context.Context) error {
		deleted, err := m.repo.DeleteBySource(ctx, src.Name)
		if err != nil {
			return fmt.Errorf("delete previous rows: %w", err)
		}
		result.Skipped = int(deleted)

		written, err := batchProcess(entries, m.batchSize, func(batch []domain.DictEntry) (int, error) {
			return m.repo.Insert(ctx, src.Name, batch)
		})
		result.Written = written
		return err
	})
	if err != nil {
		result.Written = 0
		result.Err = fmt.Errorf("merge %s: %w", src.Name, err)
	}
	return result
}

func readJSON(path string) ([]domain.DictEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrInputMissing)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var entries []domain.DictEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s is not a JSON array of entries: %w", path, err)
	}
	return entries, nil
}

// batchProcess splits items into batches of batchSize and calls fn for each.
// Returns total count from fn and the first error encountered.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
