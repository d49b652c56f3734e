package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/services"
	"github.com/stretchr/testify/require"
)

type fakeJournalStore struct {
	saved   *model.Journal
	loadErr error
	saveErr error
}

func (f *fakeJournalStore) Save(_ context.Context, journal *model.Journal) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	f.saved = model.RestoreJournal(journal.Entries())

	return nil
}

func (f *fakeJournalStore) Load(context.Context) (*model.Journal, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}

	if f.saved == nil {
		return model.NewJournal(), nil
	}

	return model.RestoreJournal(f.saved.Entries()), nil
}

func TestJournalService_Append(t *testing.T) {
	t.Parallel()

	store := &fakeJournalStore{}
	svc, err := services.NewJournalService(context.Background(), store)
	require.NoError(t, err)

	seq, err := svc.Append(context.Background(), "product created")
	require.NoError(t, err)
	require.Equal(t, 1, seq)

	entries, err := svc.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "product created", entries[0].Text)

	require.NotNil(t, store.saved)
	require.Equal(t, 1, store.saved.Len())
}

func TestJournalService_AppendRollsBackOnSaveError(t *testing.T) {
	t.Parallel()

	store := &fakeJournalStore{}
	svc, err := services.NewJournalService(context.Background(), store)
	require.NoError(t, err)

	store.saveErr = errors.New("disk full")

	_, err = svc.Append(context.Background(), "lost entry")
	require.Error(t, err)

	entries, err := svc.Entries(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestJournalService_Remove(t *testing.T) {
	t.Parallel()

	store := &fakeJournalStore{}
	svc, err := services.NewJournalService(context.Background(), store)
	require.NoError(t, err)

	_, err = svc.Append(context.Background(), "first")
	require.NoError(t, err)
	_, err = svc.Append(context.Background(), "second")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), 1))

	entries, err := svc.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 2, entries[0].Seq)
}

func TestJournalService_RemoveUnknownEntry(t *testing.T) {
	t.Parallel()

	svc, err := services.NewJournalService(context.Background(), &fakeJournalStore{})
	require.NoError(t, err)

	err = svc.Remove(context.Background(), 42)
	require.ErrorIs(t, err, model.ErrEntryNotFound)
}

func TestJournalService_RestoresFromStore(t *testing.T) {
	t.Parallel()

	store := &fakeJournalStore{}
	first, err := services.NewJournalService(context.Background(), store)
	require.NoError(t, err)

	_, err = first.Append(context.Background(), "persisted")
	require.NoError(t, err)

	second, err := services.NewJournalService(context.Background(), store)
	require.NoError(t, err)

	seq, err := second.Append(context.Background(), "after restart")
	require.NoError(t, err)
	require.Equal(t, 2, seq)
}

func TestJournalService_LoadFailure(t *testing.T) {
	t.Parallel()

	store := &fakeJournalStore{loadErr: errors.New("corrupt file")}

	_, err := services.NewJournalService(context.Background(), store)
	require.Error(t, err)
}
