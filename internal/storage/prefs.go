package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/flap-arcade/internal/prefs"
)

var _ prefs.Store = (*Store)(nil)

// GetInt returns a preference, preferring values not yet flushed.
// Read failures fall back to def.
func (s *Store) GetInt(key string, def int) int {
	s.mu.Lock()
	if v, ok := s.pending[key]; ok {
		s.mu.Unlock()
		return v
	}
	s.mu.Unlock()

	var v int
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&v)
	if err != nil {
		return def
	}
	return v
}

// PutInt buffers a preference until the next Flush.
func (s *Store) PutInt(key string, value int) {
	s.mu.Lock()
	s.pending[key] = value
	s.mu.Unlock()
}

// Flush writes buffered preferences in one transaction. On failure the
// buffer is kept so a later Flush can retry.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin prefs flush: %w", err)
	}

	for key, value := range s.pending {
		_, err := tx.Exec(
			`INSERT INTO prefs (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			key, value,
		)
		if err != nil {
			rbErr := tx.Rollback()
			if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, rbErr)
			}
			return fmt.Errorf("storage: cannot write pref %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit prefs: %w", err)
	}

	clear(s.pending)
	return nil
}
