package engine

import (
	"sort"
	"time"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/store"
)

// dedupRetentionDays bounds how long per-day dedup records are kept.
const dedupRetentionDays = 7

// Deduper records which triggers have already fired so repeats are
// suppressed across ticks, restarts, and contexts. Break dedup is keyed by
// (date, id): scheduled breaks recur daily. Meeting ceilings are keyed by
// date and never decrease within a day; an absent date means zero.
type Deduper struct {
	conn         *store.Conn
	firedBreaks  map[string]map[string]bool
	meetingHours map[string]int
}

func NewDeduper(conn *store.Conn) *Deduper {
	d := &Deduper{conn: conn}
	d.Reload()
	return d
}

// BreakFired reports whether the break already fired on the given date.
func (d *Deduper) BreakFired(date, id string) bool {
	return d.firedBreaks[date][id]
}

// MarkBreakFired records the (date, id) trigger as consumed and persists.
func (d *Deduper) MarkBreakFired(date, id string) error {
	if d.firedBreaks[date] == nil {
		d.firedBreaks[date] = make(map[string]bool)
	}
	d.firedBreaks[date][id] = true
	d.pruneBreaks(date)
	return d.saveBreaks()
}

// ClearBreak forgets every fired record for the break id, re-arming it.
// Called when the break is removed from the registry.
func (d *Deduper) ClearBreak(id string) error {
	changed := false
	for date, ids := range d.firedBreaks {
		if ids[id] {
			delete(ids, id)
			changed = true
		}
		if len(ids) == 0 {
			delete(d.firedBreaks, date)
		}
	}
	if !changed {
		return nil
	}
	return d.saveBreaks()
}

// MeetingCeiling returns the highest meeting hour already notified for date.
func (d *Deduper) MeetingCeiling(date string) int {
	return d.meetingHours[date]
}

// RaiseMeetingCeiling records the new ceiling for date and persists. Lower
// values are ignored; the ceiling is monotonic within a day.
func (d *Deduper) RaiseMeetingCeiling(date string, hours int) error {
	if hours <= d.meetingHours[date] {
		return nil
	}
	d.meetingHours[date] = hours
	d.pruneMeetingHours(date)
	return d.conn.Set(store.KeyMeetingHours, d.meetingHours)
}

// Reload rebuilds both mirrors from the persisted state.
func (d *Deduper) Reload() {
	persisted := make(map[string][]string)
	d.conn.Get(store.KeyFiredBreaks, &persisted)
	fired := make(map[string]map[string]bool, len(persisted))
	for date, ids := range persisted {
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		fired[date] = set
	}
	d.firedBreaks = fired

	hours := make(map[string]int)
	d.conn.Get(store.KeyMeetingHours, &hours)
	d.meetingHours = hours
}

func (d *Deduper) saveBreaks() error {
	persisted := make(map[string][]string, len(d.firedBreaks))
	for date, ids := range d.firedBreaks {
		list := make([]string, 0, len(ids))
		for id := range ids {
			list = append(list, id)
		}
		sort.Strings(list)
		persisted[date] = list
	}
	return d.conn.Set(store.KeyFiredBreaks, persisted)
}

func (d *Deduper) pruneBreaks(today string) {
	cutoff := retentionCutoff(today)
	if cutoff == "" {
		return
	}
	for date := range d.firedBreaks {
		if date < cutoff {
			delete(d.firedBreaks, date)
		}
	}
}

func (d *Deduper) pruneMeetingHours(today string) {
	cutoff := retentionCutoff(today)
	if cutoff == "" {
		return
	}
	for date := range d.meetingHours {
		if date < cutoff {
			delete(d.meetingHours, date)
		}
	}
}

func retentionCutoff(today string) string {
	day, err := time.Parse("2006-01-02", today)
	if err != nil {
		return ""
	}
	return model.DateKey(day.AddDate(0, 0, -dedupRetentionDays))
}
