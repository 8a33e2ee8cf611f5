package engine

import (
	"errors"
	"sort"
	"strings"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/store"
)

var ErrBreakNotFound = errors.New("engine: scheduled break not found")

// BreakRegistry holds the time-sorted scheduled-break list. The full list is
// persisted on every mutation; other contexts rebuild their mirror wholesale
// on change notification.
type BreakRegistry struct {
	conn   *store.Conn
	newID  func() string
	breaks []model.ScheduledBreak
}

func NewBreakRegistry(conn *store.Conn, newID func() string) *BreakRegistry {
	r := &BreakRegistry{conn: conn, newID: newID}
	r.Reload()
	return r
}

// Add validates and inserts a break in time-sorted order, assigning a fresh
// creation-time-derived id, and persists the whole list. Validation failures
// leave the registry and the store untouched.
func (r *BreakRegistry) Add(hhmm string, durationMinutes int) (model.ScheduledBreak, error) {
	brk := model.ScheduledBreak{
		ID:              r.newID(),
		Time:            strings.TrimSpace(hhmm),
		DurationMinutes: durationMinutes,
	}
	if err := brk.Validate(); err != nil {
		return model.ScheduledBreak{}, err
	}
	r.breaks = append(r.breaks, brk)
	sort.SliceStable(r.breaks, func(i, j int) bool { return r.breaks[i].Time < r.breaks[j].Time })
	if err := r.conn.Set(store.KeyScheduledBreaks, r.breaks); err != nil {
		return model.ScheduledBreak{}, err
	}
	return brk, nil
}

// Remove deletes the break and persists the remaining list.
func (r *BreakRegistry) Remove(id string) error {
	kept := r.breaks[:0]
	found := false
	for _, brk := range r.breaks {
		if brk.ID == id {
			found = true
			continue
		}
		kept = append(kept, brk)
	}
	if !found {
		return ErrBreakNotFound
	}
	r.breaks = kept
	return r.conn.Set(store.KeyScheduledBreaks, r.breaks)
}

// List returns a copy of the registered breaks in time order.
func (r *BreakRegistry) List() []model.ScheduledBreak {
	out := make([]model.ScheduledBreak, len(r.breaks))
	copy(out, r.breaks)
	return out
}

// Due returns the breaks matching nowHHMM at minute granularity whose id the
// fired predicate does not already know.
func (r *BreakRegistry) Due(nowHHMM string, fired func(id string) bool) []model.ScheduledBreak {
	due := make([]model.ScheduledBreak, 0)
	for _, brk := range r.breaks {
		if brk.Time != nowHHMM {
			continue
		}
		if fired != nil && fired(brk.ID) {
			continue
		}
		due = append(due, brk)
	}
	return due
}

// Reload rebuilds the in-memory mirror from the persisted list.
func (r *BreakRegistry) Reload() {
	breaks := make([]model.ScheduledBreak, 0)
	r.conn.Get(store.KeyScheduledBreaks, &breaks)
	r.breaks = breaks
}
