package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/testhelper"
)

func countWords(t *testing.T, db *store.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM words`).Scan(&n))
	return n
}

func insertWord(ctx context.Context, db *store.DB, word string) error {
	_, err := store.QuerierFromCtx(ctx, db).ExecContext(ctx,
		`INSERT INTO words (id, word) VALUES (?, ?)`, word, word)
	return err
}

func TestTxManager_Commit(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupSQLite(t)
	txm := store.NewTxManager(db)

	err := txm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertWord(ctx, db, "apple"); err != nil {
			return err
		}
		return insertWord(ctx, db, "pear")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countWords(t, db))
}

func TestTxManager_RollbackOnError(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupSQLite(t)
	txm := store.NewTxManager(db)
	sentinel := errors.New("stop")

	err := txm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertWord(ctx, db, "apple"); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, countWords(t, db))
}

func TestTxManager_RollbackOnPanic(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupSQLite(t)
	txm := store.NewTxManager(db)

	assert.Panics(t, func() {
		_ = txm.RunInTx(context.Background(), func(ctx context.Context) error {
			_ = insertWord(ctx, db, "apple")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countWords(t, db))
}

func TestQuerierFromCtx_NoTx(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupSQLite(t)

	q := store.QuerierFromCtx(context.Background(), db)
	assert.Same(t, db.DB, q)
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupSQLite(t)

	// testhelper already migrated; a second run must be a no-op.
	require.NoError(t, store.Migrate(context.Background(), db, nopLogger()))
	assert.Equal(t, 0, countWords(t, db))
}
