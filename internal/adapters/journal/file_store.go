package journal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/pkg/logger"
)

// FileStore persists a journal as "n: text" lines in a single file. Writes
// go through a temp file and rename so a crash never leaves a half-written
// journal behind.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger logger.Logger
}

// NewFileStore creates a journal store writing to the given path.
func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: log,
	}
}

// Save writes the journal's rendered entries to the file.
func (s *FileStore) Save(ctx context.Context, journal *model.Journal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating journal directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".journal-*")
	if err != nil {
		return fmt.Errorf("creating temp journal file: %w", err)
	}

	content := journal.String()
	if content != "" {
		content += "\n"
	}

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("writing journal: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("closing temp journal file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("replacing journal file: %w", err)
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("entries", journal.Len()).
		Msg("journal saved")

	return nil
}

// Load reads the persisted journal. A missing file yields an empty journal.
func (s *FileStore) Load(ctx context.Context) (*model.Journal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NewJournal(), nil
		}

		return nil, fmt.Errorf("opening journal file: %w", err)
	}
	defer file.Close()

	var entries []model.JournalEntry

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("parsing journal file %q: %w", s.path, err)
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading journal file: %w", err)
	}

	return model.RestoreJournal(entries), nil
}

func parseLine(line string) (model.JournalEntry, error) {
	seqText, text, found := strings.Cut(line, ": ")
	if !found {
		return model.JournalEntry{}, fmt.Errorf("malformed line %q", line)
	}

	seq, err := strconv.Atoi(seqText)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("malformed entry number in %q", line)
	}

	return model.JournalEntry{Seq: seq, Text: text}, nil
}
