// Package lexicon stores extracted word-list entries, one table per source
// document. Tables are recreated on every load.
package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

var unsafeRe = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// TableName derives the lexicon table for a source document: the base name
// without extension, unsafe characters replaced by "_", lowercased and
// suffixed with "_entries".
func TableName(document string) (string, error) {
	base := filepath.Base(document)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return "", fmt.Errorf("table name for %q: %w", document, domain.ErrValidation)
	}

	name := strings.ToLower(unsafeRe.ReplaceAllString(base, "_")) + "_entries"
	if name[0] >= '0' && name[0] <= '9' {
		name = "doc_" + name
	}
	return name, nil
}

// InsertResult counts the outcome of a bulk insert.
type InsertResult struct {
	Inserted int
	Failed   int
}

// LevelCount is one row of a level distribution. Level is empty for entries
// without a level.
type LevelCount struct {
	Level domain.Level `db:"level"`
	Count int          `db:"count"`
}

// Repo provides lexicon table persistence.
type Repo struct {
	db  *store.DB
	log *slog.Logger
}

// New creates a new lexicon repository.
func New(db *store.DB, log *slog.Logger) *Repo {
	return &Repo{db: db, log: log}
}

// ReplaceTable drops table if it exists and creates it empty. It is the only
// destructive operation of the package and must be called explicitly.
func (r *Repo) ReplaceTable(ctx context.Context, table string) error {
	if !store.ValidIdent(table) {
		return fmt.Errorf("lexicon table %q: %w", table, domain.ErrValidation)
	}
	q := store.QuerierFromCtx(ctx, r.db)

	if _, err := q.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return store.MapError(err, "drop table", table)
	}

	ddl := fmt.Sprintf(`CREATE TABLE %s (
	id            %s,
	word          TEXT NOT NULL,
	category      TEXT,
	level         TEXT,
	source        TEXT NOT NULL,
	original_line TEXT NOT NULL,
	variant       TEXT NOT NULL,
	pattern       TEXT NOT NULL
)`, table, r.db.Dialect.AutoIncrementPK())
	if _, err := q.ExecContext(ctx, ddl); err != nil {
		return store.MapError(err, "create table", table)
	}

	idx := fmt.Sprintf("CREATE INDEX ix_%s_word ON %s (word)", table, table)
	if _, err := q.ExecContext(ctx, idx); err != nil {
		return store.MapError(err, "create index", table)
	}
	return nil
}

// InsertEntries inserts entries in order, one statement per entry. A failed
// record is logged and counted; connection-level errors abort the load.
func (r *Repo) InsertEntries(ctx context.Context, table string, entries []domain.Entry) (InsertResult, error) {
	var res InsertResult
	if !store.ValidIdent(table) {
		return res, fmt.Errorf("lexicon table %q: %w", table, domain.ErrValidation)
	}
	q := store.QuerierFromCtx(ctx, r.db)
	b := r.db.Dialect.Builder()

	for _, e := range entries {
		query, args, err := b.Insert(table).
			Columns("word", "category", "level", "source", "original_line", "variant", "pattern").
			Values(e.Word, nullable(e.Category), nullable(string(e.Level)), e.Source, e.OriginalLine, string(e.Variant), string(e.Pattern)).
			ToSql()
		if err != nil {
			return res, fmt.Errorf("build insert: %w", err)
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			if store.IsConnError(err) {
				return res, fmt.Errorf("insert into %s: %w", table, err)
			}
			res.Failed++
			r.log.Warn("insert entry failed",
				slog.String("table", table),
				slog.String("word", e.Word),
				slog.String("line", e.OriginalLine),
				slog.String("error", store.MapError(err, "entry", e.Word).Error()),
			)
			continue
		}
		res.Inserted++
	}

	return res, nil
}

// Count returns the number of rows in table.
func (r *Repo) Count(ctx context.Context, table string) (int, error) {
	if !store.ValidIdent(table) {
		return 0, fmt.Errorf("lexicon table %q: %w", table, domain.ErrValidation)
	}
	query, args, err := r.db.Dialect.Builder().Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := store.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, store.MapError(err, "count", table)
	}
	return n, nil
}

// LevelDistribution counts entries per level, ordered A1..C2 with the
// no-level bucket last.
func (r *Repo) LevelDistribution(ctx context.Context, table string) ([]LevelCount, error) {
	if !store.ValidIdent(table) {
		return nil, fmt.Errorf("lexicon table %q: %w", table, domain.ErrValidation)
	}
	query, args, err := r.db.Dialect.Builder().
		Select("COALESCE(level, '') AS level", "COUNT(*) AS count").
		From(table).
		GroupBy("COALESCE(level, '')").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build distribution: %w", err)
	}

	var rows []LevelCount
	if err := sqlscan.Select(ctx, store.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, store.MapError(err, "distribution", table)
	}

	sort.Slice(rows, func(i, j int) bool {
		li, lj := rows[i].Level, rows[j].Level
		if li.Rank() == lj.Rank() {
			return li < lj
		}
		if li.Rank() == 0 || lj.Rank() == 0 {
			return lj.Rank() == 0
		}
		return li.Rank() < lj.Rank()
	})
	return rows, nil
}

type entryRow struct {
	Word         string         `db:"word"`
	Category     sql.NullString `db:"category"`
	Level        sql.NullString `db:"level"`
	Source       string         `db:"source"`
	OriginalLine string         `db:"original_line"`
	Variant      string         `db:"variant"`
	Pattern      string         `db:"pattern"`
}

// List returns every entry of table in insertion order.
func (r *Repo) List(ctx context.Context, table string) ([]domain.Entry, error) {
	if !store.ValidIdent(table) {
		return nil, fmt.Errorf("lexicon table %q: %w", table, domain.ErrValidation)
	}
	query, args, err := r.db.Dialect.Builder().
		Select("word", "category", "level", "source", "original_line", "variant", "pattern").
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var rows []entryRow
	if err := sqlscan.Select(ctx, store.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, store.MapError(err, "list", table)
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.Entry{
			Word:         row.Word,
			Category:     row.Category.String,
			Level:        domain.Level(row.Level.String),
			Source:       row.Source,
			OriginalLine: row.OriginalLine,
			Variant:      domain.Variant(row.Variant),
			Pattern:      domain.Pattern(row.Pattern),
		})
	}
	return entries, nil
}

type wordLevelRow struct {
	Word  sql.NullString `db:"word"`
	Level sql.NullString `db:"level"`
}

// WordLevels reads (word, level) pairs from any table with a word column.
// levelColumn names the level column ("level" for tables written by this
// package). Words are returned raw; unparseable levels read as no level.
func (r *Repo) WordLevels(ctx context.Context, table, levelColumn string) ([]domain.WordLevel, error) {
	if !store.ValidIdent(table) || !store.ValidIdent(levelColumn) {
		return nil, fmt.Errorf("source %s.%s: %w", table, levelColumn, domain.ErrValidation)
	}
	query, args, err := r.db.Dialect.Builder().
		Select("word", levelColumn+" AS level").
		From(table).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word levels: %w", err)
	}

	var rows []wordLevelRow
	if err := sqlscan.Select(ctx, store.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, store.MapError(err, "word levels", table)
	}

	out := make([]domain.WordLevel, 0, len(rows))
	for _, row := range rows {
		lv, _ := domain.ParseLevel(row.Level.String)
		out = append(out, domain.WordLevel{Word: row.Word.String, Level: lv})
	}
	return out, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
