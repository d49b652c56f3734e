package model

import (
	"fmt"
	"strings"
	"time"
)

type JournalEntry struct {
	Seq  int
	Text string
	At   time.Time
}

// Journal keeps an ordered, 1-numbered record of noteworthy events. Storage
// is owned by each instance; persistence is a separate concern handled by a
// JournalStore.
type Journal struct {
	entries []JournalEntry
	nextSeq int
}

func NewJournal() *Journal {
	return &Journal{
		entries: make([]JournalEntry, 0),
		nextSeq: 1,
	}
}

// RestoreJournal rebuilds a journal from persisted entries. Numbering
// continues after the highest restored entry number, so gaps left by
// removed entries stay gaps.
func RestoreJournal(entries []JournalEntry) *Journal {
	journal := NewJournal()

	for _, entry := range entries {
		journal.entries = append(journal.entries, entry)

		if entry.Seq >= journal.nextSeq {
			journal.nextSeq = entry.Seq + 1
		}
	}

	return journal
}

// AddEntry records text and returns the entry number assigned to it.
// Entry numbers are 1-based and never reused within a journal.
func (j *Journal) AddEntry(text string) int {
	seq := j.nextSeq
	j.nextSeq++

	j.entries = append(j.entries, JournalEntry{
		Seq:  seq,
		Text: text,
		At:   time.Now().UTC(),
	})

	return seq
}

// RemoveEntry deletes the entry with the given number, not slice index.
func (j *Journal) RemoveEntry(seq int) error {
	for i, entry := range j.entries {
		if entry.Seq == seq {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("%w: %d", ErrEntryNotFound, seq)
}

func (j *Journal) Entries() []JournalEntry {
	out := make([]JournalEntry, len(j.entries))
	copy(out, j.entries)

	return out
}

func (j *Journal) Len() int {
	return len(j.entries)
}

func (j *Journal) String() string {
	lines := make([]string, 0, len(j.entries))

	for _, entry := range j.entries {
		lines = append(lines, fmt.Sprintf("%d: %s", entry.Seq, entry.Text))
	}

	return strings.Join(lines, "\n")
}
