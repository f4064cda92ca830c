// Package loader runs the word-list extraction pipeline: every source
// document is read, segmented into entries and written to its own lexicon
// table.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/lexicon"
	"github.com/heartmarshall/myenglish-lexicon/internal/app"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
	"github.com/heartmarshall/myenglish-lexicon/internal/extract"
	"github.com/heartmarshall/myenglish-lexicon/pkg/ctxutil"
)

// supportedExt lists the document types picked up from the input dir.
var supportedExt = map[string]bool{".pdf": true, ".txt": true}

// Extractor turns a document into entries.
type Extractor interface {
	Extract(doc domain.RawDocument) extract.Result
}

// EntryWriter persists entries into lexicon tables.
type EntryWriter interface {
	ReplaceTable(ctx context.Context, table string) error
	InsertEntries(ctx context.Context, table string, entries []domain.Entry) (lexicon.InsertResult, error)
	LevelDistribution(ctx context.Context, table string) ([]lexicon.LevelCount, error)
}

// ReadFunc loads a document from disk.
type ReadFunc func(path string) (domain.RawDocument, error)

// Config selects the documents and the write mode.
type Config struct {
	InputDir string
	// File, when set, processes only this document instead of InputDir.
	File   string
	DryRun bool
}

// DocumentResult holds the outcome of a single document.
type DocumentResult struct {
	Document     string
	Table        string
	Pages        int
	Lines        int
	Result       extract.Result
	Inserted     int
	Failed       int
	Distribution []lexicon.LevelCount
	Duration     time.Duration
	Err          error
}

// Loader orchestrates reading, extraction and writing.
type Loader struct {
	log     *slog.Logger
	read    ReadFunc
	extract Extractor
	writer  EntryWriter
	cfg     Config
}

// New creates a new Loader.
func New(log *slog.Logger, read ReadFunc, x Extractor, writer EntryWriter, cfg Config) *Loader {
	return &Loader{log: log, read: read, extract: x, writer: writer, cfg: cfg}
}

// Documents lists the documents to process in name order. A missing input
// is reported as domain.ErrInputMissing before anything is written.
func (l *Loader) Documents() ([]string, error) {
	if l.cfg.File != "" {
		if _, err := os.Stat(l.cfg.File); err != nil {
			return nil, fmt.Errorf("document %s: %w", l.cfg.File, domain.ErrInputMissing)
		}
		return []string{l.cfg.File}, nil
	}

	entries, err := os.ReadDir(l.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input dir %s: %w", l.cfg.InputDir, domain.ErrInputMissing)
	}

	var docs []string
	for _, e := range entries {
		if e.IsDir() || !supportedExt[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		docs = append(docs, filepath.Join(l.cfg.InputDir, e.Name()))
	}
	sort.Strings(docs)

	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents in %s: %w", l.cfg.InputDir, domain.ErrInputMissing)
	}
	return docs, nil
}

// Run processes every document. Per-document failures are recorded in the
// results and processing continues; a missing input or a storage
// connection failure stops the run with an error.
func (l *Loader) Run(ctx context.Context) ([]DocumentResult, error) {
	docs, err := l.Documents()
	if err != nil {
		return nil, err
	}

	log := app.RunLogger(ctx, l.log)
	log.Info("extraction started", slog.Int("documents", len(docs)), slog.Bool("dry_run", l.cfg.DryRun))

	results := make([]DocumentResult, 0, len(docs))
	for _, path := range docs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := time.Now()
		res := l.processDocument(ctxutil.WithDocument(ctx, filepath.Base(path)), path)
		res.Duration = time.Since(start)
		results = append(results, res)

		if res.Err != nil && store.IsConnError(res.Err) {
			return results, fmt.Errorf("document %s: %w", res.Document, res.Err)
		}
	}

	log.Info("extraction completed", slog.Int("documents", len(results)))
	return results, nil
}

func (l *Loader) processDocument(ctx context.Context, path string) DocumentResult {
	res := DocumentResult{Document: filepath.Base(path)}
	log := app.RunLogger(ctx, l.log)

	doc, err := l.read(path)
	if err != nil {
		res.Err = fmt.Errorf("read: %w", err)
		log.Error("read document failed", slog.String("error", err.Error()))
		return res
	}
	res.Pages = doc.Pages
	res.Lines = len(doc.Lines)

	res.Result = l.extract.Extract(doc)
	log.Info("document extracted",
		slog.String("variant", string(res.Result.Variant)),
		slog.Int("lines", res.Result.Stats.Lines),
		slog.Int("entries", len(res.Result.Entries)),
		slog.Int("skipped", res.Result.Stats.Skipped),
	)

	if len(res.Result.Entries) == 0 {
		res.Err = domain.ErrEmptyExtraction
		log.Warn("no entries extracted, table not written")
		return res
	}

	table, err := lexicon.TableName(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Table = table

	if l.cfg.DryRun {
		return res
	}

	if err := l.writer.ReplaceTable(ctx, table); err != nil {
		res.Err = fmt.Errorf("replace table: %w", err)
		log.Error("replace table failed", slog.String("table", table), slog.String("error", err.Error()))
		return res
	}

	ins, err := l.writer.InsertEntries(ctx, table, res.Result.Entries)
	res.Inserted, res.Failed = ins.Inserted, ins.Failed
	if err != nil {
		res.Err = fmt.Errorf("insert entries: %w", err)
		return res
	}

	res.Distribution, err = l.writer.LevelDistribution(ctx, table)
	if err != nil {
		res.Err = fmt.Errorf("level distribution: %w", err)
		return res
	}

	log.Info("table written",
		slog.String("table", table),
		slog.Int("inserted", res.Inserted),
		slog.Int("failed", res.Failed),
	)
	return res
}

// HasErrors returns true if any document failed or lost records. A document
// that extracted nothing is only a warning.
func HasErrors(results []DocumentResult) bool {
	for _, r := range results {
		if (r.Err != nil && !r.IsEmpty()) || r.Failed > 0 {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the document was readable but produced nothing.
func (r DocumentResult) IsEmpty() bool {
	return errors.Is(r.Err, domain.ErrEmptyExtraction)
}
