// Package localstore keeps privacy-mode memories in per-user JSON files
// on local disk instead of the server database. Records are append-only
// apart from explicit deletion.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

// Store reads and writes per-user memory files under dir. All file
// access is serialized; the store is safe for concurrent use.
type Store struct {
	dir string
	mu  sync.Mutex
	log *slog.Logger
}

// New creates a Store rooted at dir. The directory is created on first
// write, not here.
func New(dir string, logger *slog.Logger) *Store {
	return &Store{
		dir: dir,
		log: logger.With("adapter", "localstore"),
	}
}

func (s *Store) userPath(userID uuid.UUID) string {
	return filepath.Join(s.dir, userID.String()+".json")
}

// Append adds one memory to the user's file and returns it.
func (s *Store) Append(ctx context.Context, userID uuid.UUID, m domain.LocalMemory) (domain.LocalMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked(userID)
	if err != nil {
		return domain.LocalMemory{}, err
	}

	records = append(records, m)
	if err := s.writeLocked(userID, records); err != nil {
		return domain.LocalMemory{}, err
	}

	s.log.DebugContext(ctx, "local memory stored",
		slog.String("user_id", userID.String()),
		slog.String("memory_id", m.ID.String()),
	)

	return m, nil
}

// ListByUser returns all of the user's local memories in file order
// (oldest first). A missing file means no records.
func (s *Store) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.LocalMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readLocked(userID)
}

// Get returns one local memory by ID. Returns domain.ErrNotFound if the
// user has no such record.
func (s *Store) Get(_ context.Context, userID, id uuid.UUID) (domain.LocalMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked(userID)
	if err != nil {
		return domain.LocalMemory{}, err
	}
	for _, m := range records {
		if m.ID == id {
			return m, nil
		}
	}

	return domain.LocalMemory{}, fmt.Errorf("local memory %s: %w", id, domain.ErrNotFound)
}

// Delete removes one local memory by ID. Returns domain.ErrNotFound if
// the user has no such record.
func (s *Store) Delete(ctx context.Context, userID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked(userID)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, m := range records {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("local memory %s: %w", id, domain.ErrNotFound)
	}

	if err := s.writeLocked(userID, kept); err != nil {
		return err
	}

	s.log.DebugContext(ctx, "local memory deleted",
		slog.String("user_id", userID.String()),
		slog.String("memory_id", id.String()),
	)

	return nil
}

func (s *Store) readLocked(userID uuid.UUID) ([]domain.LocalMemory, error) {
	data, err := os.ReadFile(s.userPath(userID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("localstore: read %s: %w", userID, err)
	}

	var records []domain.LocalMemory
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("localstore: decode %s: %w", userID, err)
	}

	return records, nil
}

// writeLocked writes the full record list through a temp file and
// rename so a crash never leaves a truncated file behind.
func (s *Store) writeLocked(userID uuid.UUID, records []domain.LocalMemory) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("localstore: create dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", userID, err)
	}

	path := s.userPath(userID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("localstore: write %s: %w", userID, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("localstore: rename %s: %w", userID, err)
	}

	return nil
}
