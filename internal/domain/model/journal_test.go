package model_test

import (
	"testing"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestJournalAddEntry(t *testing.T) {
	t.Parallel()

	journal := model.NewJournal()

	require.Equal(t, 1, journal.AddEntry("product Apple created"))
	require.Equal(t, 2, journal.AddEntry("order paid"))
	require.Equal(t, 2, journal.Len())

	entries := journal.Entries()
	require.Equal(t, "product Apple created", entries[0].Text)
	require.Equal(t, 1, entries[0].Seq)
	require.False(t, entries[0].At.IsZero())
}

func TestJournalRemoveEntry(t *testing.T) {
	t.Parallel()

	journal := model.NewJournal()
	journal.AddEntry("first")
	journal.AddEntry("second")
	journal.AddEntry("third")

	require.NoError(t, journal.RemoveEntry(2))
	require.Equal(t, 2, journal.Len())

	// Entry numbers identify entries, they are not slice indexes, so the
	// remaining numbers survive the removal.
	entries := journal.Entries()
	require.Equal(t, 1, entries[0].Seq)
	require.Equal(t, 3, entries[1].Seq)

	err := journal.RemoveEntry(2)
	require.ErrorIs(t, err, model.ErrEntryNotFound)
}

func TestJournalNumbersAreNotReused(t *testing.T) {
	t.Parallel()

	journal := model.NewJournal()
	journal.AddEntry("first")
	require.NoError(t, journal.RemoveEntry(1))

	require.Equal(t, 2, journal.AddEntry("second"))
}

func TestJournalString(t *testing.T) {
	t.Parallel()

	journal := model.NewJournal()

	require.Empty(t, journal.String())

	journal.AddEntry("I cried today.")
	journal.AddEntry("I ate a bug.")

	require.Equal(t, "1: I cried today.\n2: I ate a bug.", journal.String())
}

func TestJournalEntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	journal := model.NewJournal()
	journal.AddEntry("only entry")

	entries := journal.Entries()
	entries[0].Text = "mutated"

	require.Equal(t, "only entry", journal.Entries()[0].Text)
}
