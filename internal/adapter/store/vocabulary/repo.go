// Package vocabulary implements access to the application's words table,
// the target of level synchronization.
package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

const table = "words"

// Word is one row of the words table.
type Word struct {
	ID           string       `db:"id"`
	Word         string       `db:"word"`
	Phonetic     string       `db:"phonetic"`
	DefinitionEN string       `db:"definition_en"`
	DefinitionZH string       `db:"definition_zh"`
	Example      string       `db:"example"`
	Level        domain.Level `db:"-"`
}

type wordRow struct {
	Word
	LevelRaw sql.NullString `db:"level"`
}

var columns = []string{"id", "word", "phonetic", "definition_en", "definition_zh", "example", "level"}

// Repo provides words table persistence.
type Repo struct {
	db *store.DB
}

// New creates a new vocabulary repository.
func New(db *store.DB) *Repo {
	return &Repo{db: db}
}

// LevelIndex returns the current level of every word. Words without a level
// map to the empty Level.
func (r *Repo) LevelIndex(ctx context.Context) (map[string]domain.Level, error) {
	query, args, err := r.db.Dialect.Builder().Select("word", "level").From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build level index: %w", err)
	}

	var rows []struct {
		Word  string         `db:"word"`
		Level sql.NullString `db:"level"`
	}
	if err := sqlscan.Select(ctx, store.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, store.MapError(err, "words", "index")
	}

	idx := make(map[string]domain.Level, len(rows))
	for _, row := range rows {
		idx[row.Word] = domain.Level(row.Level.String)
	}
	return idx, nil
}

// GetByWord returns the row for word. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByWord(ctx context.Context, word string) (*Word, error) {
	query, args, err := r.db.Dialect.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"word": word}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var row wordRow
	if err := sqlscan.Get(ctx, store.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, store.MapError(err, "word", word)
	}
	w := row.Word
	w.Level = domain.Level(row.LevelRaw.String)
	return &w, nil
}

// IDExists reports whether a row with the given id exists.
func (r *Repo) IDExists(ctx context.Context, id string) (bool, error) {
	query, args, err := r.db.Dialect.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build id lookup: %w", err)
	}

	var one int
	err = store.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, store.MapError(err, "word id", id)
	}
	return true, nil
}

// SetLevel updates only the level of word. An empty level is stored as NULL.
func (r *Repo) SetLevel(ctx context.Context, word string, level domain.Level) error {
	query, args, err := r.db.Dialect.Builder().
		Update(table).
		Set("level", levelValue(level)).
		Where(squirrel.Eq{"word": word}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	res, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return store.MapError(err, "word", word)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("word %s: %w", word, domain.ErrNotFound)
	}
	return nil
}

// Insert adds a new row.
func (r *Repo) Insert(ctx context.Context, w Word) error {
	query, args, err := r.db.Dialect.Builder().
		Insert(table).
		Columns(columns...).
		Values(w.ID, w.Word, w.Phonetic, w.DefinitionEN, w.DefinitionZH, w.Example, levelValue(w.Level)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := store.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return store.MapError(err, "word", w.ID)
	}
	return nil
}

func levelValue(l domain.Level) sql.NullString {
	return sql.NullString{String: string(l), Valid: l != ""}
}
