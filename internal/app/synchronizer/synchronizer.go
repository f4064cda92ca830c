// Package synchronizer copies proficiency levels from an extracted lexicon
// table into the application's words table.
package synchronizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/vocabulary"
	"github.com/heartmarshall/myenglish-lexicon/internal/app"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

// Source reads (word, level) pairs from a lexicon table.
type Source interface {
	WordLevels(ctx context.Context, table, levelColumn string) ([]domain.WordLevel, error)
}

// Target is the words table being synchronized.
type Target interface {
	LevelIndex(ctx context.Context) (map[string]domain.Level, error)
	IDExists(ctx context.Context, id string) (bool, error)
	SetLevel(ctx context.Context, word string, level domain.Level) error
	Insert(ctx context.Context, w vocabulary.Word) error
}

// TxRunner runs fn inside one transaction of the target store.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config selects the source table and the write mode.
type Config struct {
	// SourceName labels the source store in the report.
	SourceName  string
	Table       string
	LevelColumn string
	DryRun      bool
}

// Report lists the words per outcome in source order.
type Report struct {
	Source    string
	Read      int
	Updated   []string
	Inserted  []string
	Unchanged []string
	DryRun    bool
	Duration  time.Duration
}

var errDryRun = errors.New("dry run")

// Synchronizer merges source levels into the target.
type Synchronizer struct {
	log    *slog.Logger
	source Source
	target Target
	txm    TxRunner
	cfg    Config
	suffix func() string
}

// New creates a new Synchronizer.
func New(log *slog.Logger, source Source, target Target, txm TxRunner, cfg Config) *Synchronizer {
	if cfg.LevelColumn == "" {
		cfg.LevelColumn = "level"
	}
	return &Synchronizer{
		log:    log,
		source: source,
		target: target,
		txm:    txm,
		cfg:    cfg,
		suffix: randomSuffix,
	}
}

// Run reads the source, then applies every change inside a single target
// transaction. Any error rolls the whole merge back. In dry-run mode the
// report is computed and the transaction is rolled back.
func (s *Synchronizer) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	log := app.RunLogger(ctx, s.log).With(slog.String("table", s.cfg.Table))

	rows, err := s.source.WordLevels(ctx, s.cfg.Table, s.cfg.LevelColumn)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	words := Reduce(rows)

	report := &Report{
		Source: s.cfg.SourceName + ":" + s.cfg.Table,
		Read:   len(rows),
		DryRun: s.cfg.DryRun,
	}
	log.Info("sync started", slog.Int("rows", len(rows)), slog.Int("words", len(words)))

	err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
		*report = Report{Source: report.Source, Read: report.Read, DryRun: report.DryRun}
		if err := s.merge(ctx, words, report); err != nil {
			return err
		}
		if s.cfg.DryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, fmt.Errorf("sync %s: %w", s.cfg.Table, err)
	}

	report.Duration = time.Since(start)
	log.Info("sync completed",
		slog.Int("updated", len(report.Updated)),
		slog.Int("inserted", len(report.Inserted)),
		slog.Int("unchanged", len(report.Unchanged)),
		slog.Bool("dry_run", s.cfg.DryRun),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}

func (s *Synchronizer) merge(ctx context.Context, words []domain.WordLevel, report *Report) error {
	current, err := s.target.LevelIndex(ctx)
	if err != nil {
		return fmt.Errorf("load target levels: %w", err)
	}

	for _, wl := range words {
		level, exists := current[wl.Word]
		switch {
		case exists && level == wl.Level:
			report.Unchanged = append(report.Unchanged, wl.Word)
		case exists:
			if err := s.target.SetLevel(ctx, wl.Word, wl.Level); err != nil {
				return fmt.Errorf("update %q: %w", wl.Word, err)
			}
			report.Updated = append(report.Updated, wl.Word)
		default:
			id, err := s.freeID(ctx, wl.Word)
			if err != nil {
				return err
			}
			if err := s.target.Insert(ctx, vocabulary.Word{ID: id, Word: wl.Word, Level: wl.Level}); err != nil {
				return fmt.Errorf("insert %q: %w", wl.Word, err)
			}
			report.Inserted = append(report.Inserted, wl.Word)
		}
		current[wl.Word] = wl.Level
	}
	return nil
}

// freeID returns word itself when unused as an id, otherwise
// word_<8 hex> with a fresh random suffix until unused.
func (s *Synchronizer) freeID(ctx context.Context, word string) (string, error) {
	id := word
	for {
		taken, err := s.target.IDExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check id %q: %w", id, err)
		}
		if !taken {
			return id, nil
		}
		id = word + "_" + s.suffix()
	}
}

// Reduce normalizes source words and keeps one level per word in
// first-seen order: the lowest level wins and any level beats none.
func Reduce(rows []domain.WordLevel) []domain.WordLevel {
	pos := make(map[string]int, len(rows))
	out := make([]domain.WordLevel, 0, len(rows))

	for _, r := range rows {
		w := domain.NormalizeText(r.Word)
		if w == "" {
			continue
		}
		i, seen := pos[w]
		if !seen {
			pos[w] = len(out)
			out = append(out, domain.WordLevel{Word: w, Level: r.Level})
			continue
		}
		if r.Level.Less(out[i].Level) {
			out[i].Level = r.Level
		}
	}
	return out
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
