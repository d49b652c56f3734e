package journal_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/storecraft/storefront/internal/adapters/journal"
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*journal.FileStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.txt")

	return journal.NewFileStore(path, logger.NewTestLogger()), path
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	ctx := context.Background()

	j := model.NewJournal()
	j.AddEntry("product created")
	j.AddEntry("order paid")

	require.NoError(t, store.Save(ctx, j))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1: product created\n2: order paid\n", string(data))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, j.Entries()[0].Seq, loaded.Entries()[0].Seq)
	require.Equal(t, "product created", loaded.Entries()[0].Text)
	require.Equal(t, j.String(), loaded.String())
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, loaded.Len())
}

func TestFileStore_SaveEmptyJournal(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, model.NewJournal()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, string(data))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, loaded.Len())
}

func TestFileStore_NumberingContinuesAfterLoad(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	ctx := context.Background()

	j := model.NewJournal()
	j.AddEntry("first")
	j.AddEntry("second")
	j.AddEntry("third")
	require.NoError(t, j.RemoveEntry(2))

	require.NoError(t, store.Save(ctx, j))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	seq := loaded.AddEntry("fourth")
	require.Equal(t, 4, seq)
	require.Equal(t, "1: first\n3: third\n4: fourth", loaded.String())
}

func TestFileStore_LoadMalformedFile(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)

	require.NoError(t, os.WriteFile(path, []byte("not a journal line\n"), 0o600))

	_, err := store.Load(context.Background())
	require.Error(t, err)
}

func TestFileStore_SaveOverwritesPrevious(t *testing.T) {
	t.Parallel()

	store, path := newStore(t)
	ctx := context.Background()

	first := model.NewJournal()
	first.AddEntry("old entry")
	require.NoError(t, store.Save(ctx, first))

	second := model.NewJournal()
	second.AddEntry("new entry")
	require.NoError(t, store.Save(ctx, second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1: new entry\n", string(data))
}

func TestFileStore_CancelledContext(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Save(ctx, model.NewJournal()), context.Canceled)

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
