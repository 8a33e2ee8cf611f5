package suggest

import (
	"time"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/store"
)

// DefaultHistoryCap bounds the completion log. Oldest entries are evicted by
// insertion order once the cap is reached.
const DefaultHistoryCap = 200

// History is the bounded, newest-first completion log.
type History struct {
	conn *store.Conn
	cap  int
}

func NewHistory(conn *store.Conn, cap int) *History {
	if cap <= 0 {
		cap = DefaultHistoryCap
	}
	return &History{conn: conn, cap: cap}
}

// Record validates and prepends an entry, truncates to the cap, and persists
// the whole collection.
func (h *History) Record(entry model.CompletionEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	entries := h.Entries()
	entries = append([]model.CompletionEntry{entry}, entries...)
	if len(entries) > h.cap {
		entries = entries[:h.cap]
	}
	return h.conn.Set(store.KeyHistory, entries)
}

// Entries returns the persisted log, newest first. Malformed state decodes to
// the empty log.
func (h *History) Entries() []model.CompletionEntry {
	entries := make([]model.CompletionEntry, 0)
	h.conn.Get(store.KeyHistory, &entries)
	return entries
}

// CompletedToday counts entries recorded on the same calendar day as now,
// skips included.
func (h *History) CompletedToday(now time.Time) int {
	today := model.DateKey(now)
	count := 0
	for _, entry := range h.Entries() {
		at := time.UnixMilli(entry.Timestamp).In(now.Location())
		if model.DateKey(at) == today {
			count++
		}
	}
	return count
}

// Reset clears the log.
func (h *History) Reset() error {
	return h.conn.Set(store.KeyHistory, []model.CompletionEntry{})
}
