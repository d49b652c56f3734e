package ports

import (
	"context"

	"github.com/storecraft/storefront/internal/domain/model"
)

type (
	// JournalStore defines the interface for journal persistence operations.
	JournalStore interface {
		// Save persists the journal's rendered entries.
		Save(ctx context.Context, journal *model.Journal) error

		// Load reads the persisted journal, returning an empty journal when
		// nothing has been saved yet.
		Load(ctx context.Context) (*model.Journal, error)
	}

	// JournalService defines the interface for the service audit trail.
	JournalService interface {
		// Append records a new entry and returns its entry number.
		Append(ctx context.Context, text string) (int, error)

		// Remove deletes the entry with the given number.
		Remove(ctx context.Context, seq int) error

		// Entries returns all recorded entries in order.
		Entries(ctx context.Context) ([]model.JournalEntry, error)
	}
)
