// Package dictentry stores converted dictionary definitions in the
// dict_entries table, grouped by source.
package dictentry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

const table = "dict_entries"

// SourceCount is the number of stored entries of one source.
type SourceCount struct {
	Source string `db:"source"`
	Count  int    `db:"count"`
}

// Repo provides dict_entries persistence.
type Repo struct {
	db *store.DB
}

// New creates a new dict entry repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// DeleteBySource removes every entry of source and returns how many rows
// were deleted.
func (r *Repo) DeleteBySource(ctx context.Context, source string) (int64, error) {
	query, args, err := r.db.Dialect.Builder().
		Delete(table).
		Where(squirrel.Eq{"source": source}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, store.MapError(err, "dict source", source)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Insert adds entries under source with fresh ids. The entry as read is
// kept in raw_json. Any failure aborts; callers run it inside a transaction.
func (r *Repo) Insert(ctx context.Context, source string, entries []domain.DictEntry) (int, error) {
	q := store.QuerierFromCtx(ctx, r.db)
	b := r.db.Dialect.Builder()

	for i, e := range entries {
		raw, err := json.Marshal(e)
		if err != nil {
			return i, fmt.Errorf("marshal %s entry %q: %w", source, e.Word, err)
		}

		query, args, err := b.Insert(table).
			Columns("id", "word", "category", "definition", "synset", "source", "raw_json").
			Values(uuid.NewString(), e.Word, e.Category, e.Definition, e.Synset, source, string(raw)).
			ToSql()
		if err != nil {
			return i, fmt.Errorf("build insert: %w", err)
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return i, store.MapError(err, "dict entry", e.Word)
		}
	}
	return len(entries), nil
}

// CountBySource returns per-source row counts ordered by source.
func (r *Repo) CountBySource(ctx context.Context) ([]SourceCount, error) {
	query, args, err := r.db.Dialect.Builder().
		Select("source", "COUNT(*) AS count").
		From(table).
		GroupBy("source").
		OrderBy("source").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count: %w", err)
	}

	var out []SourceCount
	if err := sqlscan.Select(ctx, store.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, store.MapError(err, "dict entries", "count")
	}
	return out, nil
}

// ListByWord returns every stored definition of word across sources.
func (r *Repo) ListByWord(ctx context.Context, word string) ([]domain.DictEntry, error) {
	query, args, err := r.db.Dialect.Builder().
		Select("word", "category", "definition", "synset").
		From(table).
		Where(squirrel.Eq{"word": word}).
		OrderBy("source", "definition").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var out []domain.DictEntry
	if err := sqlscan.Select(ctx, store.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, store.MapError(err, "dict entries", word)
	}
	return out, nil
}
