package prefs

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// offerMu serialises Offer across HighScores. Sessions in one process
// may share a Store, and each compares against the stored value.
var offerMu sync.Mutex

// HighScore is a best score cached in memory and mirrored to a Store
// under a fixed key. It never decreases.
type HighScore struct {
	store  Store
	key    string
	logger *log.Logger
	value  int
}

// LoadHighScore reads the persisted value for key, treating a missing or
// negative value as zero.
func LoadHighScore(store Store, key string, logger *log.Logger) *HighScore {
	if store == nil {
		store = NewMemory()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScore{
		store:  store,
		key:    key,
		logger: logger,
		value:  max(store.GetInt(key, 0), 0),
	}
}

// Value returns the current best score.
func (h *HighScore) Value() int {
	return h.value
}

// Offer records score if it beats both the cached and the stored best and
// reports whether it did. A failed flush is logged; the in-memory value
// still advances.
func (h *HighScore) Offer(score int) bool {
	offerMu.Lock()
	defer offerMu.Unlock()

	h.value = max(h.value, h.store.GetInt(h.key, 0))
	if score <= h.value {
		return false
	}
	h.value = score
	h.store.PutInt(h.key, score)
	if err := h.store.Flush(); err != nil {
		h.logger.Warn("high score not persisted", "key", h.key, "score", score, "error", err)
	}
	return true
}
