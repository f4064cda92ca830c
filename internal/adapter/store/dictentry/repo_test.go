package dictentry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/dictentry"
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/testhelper"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

func TestRepo_InsertAndCount(t *testing.T) {
	t.Parallel()
	repo := dictentry.New(testhelper.SetupSQLite(t))
	ctx := context.Background()

	n, err := repo.Insert(ctx, "gcide", []domain.DictEntry{
		{Word: "apple", Category: "n.", Definition: "The fleshy pome or fruit of a rosaceous tree."},
		{Word: "run", Category: "v. i.", Definition: "To move swiftly."},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = repo.Insert(ctx, "wordnet", []domain.DictEntry{
		{Word: "apple", Category: "n", Definition: "fruit with red or yellow or green skin", Synset: "107739125"},
	})
	require.NoError(t, err)

	counts, err := repo.CountBySource(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dictentry.SourceCount{{Source: "gcide", Count: 2}, {Source: "wordnet", Count: 1}}, counts)

	got, err := repo.ListByWord(ctx, "apple")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "107739125", got[1].Synset)
}

func TestRepo_ReplaceSourceInTx(t *testing.T) {
	t.Parallel()
	db := testhelper.SetupSQLite(t)
	repo := dictentry.New(db)
	txm := store.NewTxManager(db)
	ctx := context.Background()

	load := func(entries []domain.DictEntry) error {
		return txm.RunInTx(ctx, func(ctx context.Context) error {
			if _, err := repo.DeleteBySource(ctx, "omw"); err != nil {
				return err
			}
			_, err := repo.Insert(ctx, "omw", entries)
			return err
		})
	}

	entries := []domain.DictEntry{{Word: "dog", Category: "n", Definition: "a domesticated canid"}}
	require.NoError(t, load(entries))
	require.NoError(t, load(entries))

	counts, err := repo.CountBySource(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dictentry.SourceCount{{Source: "omw", Count: 1}}, counts)

	sentinel := errors.New("abort")
	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repo.DeleteBySource(ctx, "omw"); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	counts, err = repo.CountBySource(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dictentry.SourceCount{{Source: "omw", Count: 1}}, counts, "rolled back delete keeps rows")
}
