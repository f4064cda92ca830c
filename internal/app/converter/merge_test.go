package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store"
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/dictentry"
	"github.com/heartmarshall/myenglish-lexicon/internal/adapter/store/testhelper"
	"github.com/heartmarshall/myenglish-lexicon/internal/domain"
)

func writeSource(t *testing.T, dir, name, body string) MergeSource {
	t.Helper()
	path := filepath.Join(dir, name+".json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return MergeSource{Name: name, Path: path}
}

func counts(t *testing.T, repo *dictentry.Repo) map[string]int {
	t.Helper()
	rows, err := repo.CountBySource(context.Background())
	require.NoError(t, err)
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Source] = r.Count
	}
	return out
}

func TestMerger_Run(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	repo := dictentry.New(db)
	dir := t.TempDir()

	sources := []MergeSource{
		writeSource(t, dir, "gcide", `[{"word":"abandon","category":"v. t.","definition":"To give up."},{"word":"abase","category":"v. t.","definition":"To lower."}]`),
		writeSource(t, dir, "wordlist", `[{"word":"ability","category":"n."}]`),
	}

	m := NewMerger(nopLogger(), repo, store.NewTxManager(db), 1)
	m.Run(context.Background(), sources)

	require.False(t, m.HasErrors())
	assert.Equal(t, 2, m.Results()["gcide"].Written)
	assert.Equal(t, map[string]int{"gcide": 2, "wordlist": 1}, counts(t, repo))

	got, err := repo.ListByWord(context.Background(), "abandon")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "To give up.", got[0].Definition)

	// A second run replaces rows of each source instead of appending.
	m = NewMerger(nopLogger(), repo, store.NewTxManager(db), 500)
	m.Run(context.Background(), sources)
	require.False(t, m.HasErrors())
	assert.Equal(t, 2, m.Results()["gcide"].Skipped)
	assert.Equal(t, map[string]int{"gcide": 2, "wordlist": 1}, counts(t, repo))
}

func TestMerger_BadFileKeepsPreviousRows(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	repo := dictentry.New(db)
	dir := t.TempDir()

	good := writeSource(t, dir, "wordnet", `[{"word":"dog","category":"n","definition":"a member of the genus Canis","synset":"102084071"}]`)
	m := NewMerger(nopLogger(), repo, store.NewTxManager(db), 100)
	m.Run(context.Background(), []MergeSource{good})
	require.False(t, m.HasErrors())

	bad := writeSource(t, dir, "wordnet", `{"word":"dog"}`)
	missing := MergeSource{Name: "omw", Path: filepath.Join(dir, "omw.json")}
	m = NewMerger(nopLogger(), repo, store.NewTxManager(db), 100)
	m.Run(context.Background(), []MergeSource{bad, missing})

	require.True(t, m.HasErrors())
	assert.ErrorIs(t, m.Results()["omw"].Err, domain.ErrInputMissing)
	assert.Equal(t, map[string]int{"wordnet": 1}, counts(t, repo))
}

type failingRepo struct {
	*dictentry.Repo
	calls int
}

func (f *failingRepo) Insert(ctx context.Context, source string, entries []domain.DictEntry) (int, error) {
	f.calls++
	if f.calls == 2 {
		return 0, errors.New("disk full")
	}
	return f.Repo.Insert(ctx, source, entries)
}

func TestMerger_InsertErrorRollsBackSource(t *testing.T) {
	t.Parallel()

	db := testhelper.SetupSQLite(t)
	base := dictentry.New(db)
	dir := t.TempDir()

	src := writeSource(t, dir, "gcide", `[{"word":"a"},{"word":"b"},{"word":"c"}]`)
	m := NewMerger(nopLogger(), base, store.NewTxManager(db), 10)
	m.Run(context.Background(), []MergeSource{src})
	require.False(t, m.HasErrors())

	src = writeSource(t, dir, "gcide", `[{"word":"x"},{"word":"y"},{"word":"z"}]`)
	m = NewMerger(nopLogger(), &failingRepo{Repo: base}, store.NewTxManager(db), 2)
	m.Run(context.Background(), []MergeSource{src})

	r := m.Results()["gcide"]
	require.Error(t, r.Err)
	assert.Equal(t, 0, r.Written)

	got, err := base.ListByWord(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, got, 1, "previous rows survive a failed merge")
	got, err = base.ListByWord(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSourcesIn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "wordlist", `[]`)
	writeSource(t, dir, "gcide", `[]`)

	got, err := SourcesIn(dir, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "gcide", got[0].Name)
	assert.Equal(t, "wordlist", got[1].Name)

	_, err = SourcesIn(dir, []string{"bogus"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBatchProcess(t *testing.T) {
	items := make([]int, 7)
	for i := range items {
		items[i] = i
	}

	var batches [][]int
	total, err := batchProcess(items, 3, func(batch []int) (int, error) {
		batches = append(batches, batch)
		return len(batch), nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 7 {
		t.Errorf("expected total 7, got %d", total)
	}
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	if len(batches[2]) != 1 {
		t.Errorf("expected last batch size 1, got %d", len(batches[2]))
	}
}

func TestBatchProcess_EmptySlice(t *testing.T) {
	total, err := batchProcess([]int{}, 10, func(batch []int) (int, error) {
		t.Fatal("should not be called for empty input")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0, got %d", total)
	}
}

func TestBatchProcess_ErrorStops(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	callCount := 0
	_, err := batchProcess(items, 2, func(batch []int) (int, error) {
		callCount++
		if callCount == 2 {
			return 0, fmt.Errorf("batch error")
		}
		return len(batch), nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if callCount != 2 {
		t.Errorf("expected 2 calls before error, got %d", callCount)
	}
}
