package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/ports"
)

// JournalService owns the service audit trail. The journal aggregate lives
// in memory; every mutation is written through to the store so the trail
// survives restarts.
type JournalService struct {
	mu      sync.Mutex
	journal *model.Journal
	store   ports.JournalStore
}

// NewJournalService restores the journal from the store.
func NewJournalService(ctx context.Context, store ports.JournalStore) (*JournalService, error) {
	journal, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}

	return &JournalService{
		journal: journal,
		store:   store,
	}, nil
}

// Append records a new entry and returns its entry number.
func (s *JournalService) Append(ctx context.Context, text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.journal.AddEntry(text)

	if err := s.store.Save(ctx, s.journal); err != nil {
		// Roll back so the in-memory trail matches what is on disk.
		_ = s.journal.RemoveEntry(seq)

		return 0, fmt.Errorf("persisting journal entry: %w", err)
	}

	return seq, nil
}

// Remove deletes the entry with the given number.
func (s *JournalService) Remove(ctx context.Context, seq int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.journal.RemoveEntry(seq); err != nil {
		return err
	}

	if err := s.store.Save(ctx, s.journal); err != nil {
		return fmt.Errorf("persisting journal: %w", err)
	}

	return nil
}

// Entries returns all recorded entries in order.
func (s *JournalService) Entries(_ context.Context) ([]model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.journal.Entries(), nil
}
