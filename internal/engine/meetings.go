package engine

import (
	"errors"
	"sort"
	"strings"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/store"
)

var ErrMeetingNotFound = errors.New("engine: meeting not found")

// MeetingTracker manages the calendar meeting list and computes the
// cumulative completed-meeting load that drives the hourly trigger.
type MeetingTracker struct {
	conn     *store.Conn
	newID    func() string
	meetings []model.Meeting
}

func NewMeetingTracker(conn *store.Conn, newID func() string) *MeetingTracker {
	t := &MeetingTracker{conn: conn, newID: newID}
	t.Reload()
	return t
}

// Add validates and inserts a meeting, keeping the list ordered by date and
// start time, and persists the whole collection. A rejected meeting leaves
// no partial state behind.
func (t *MeetingTracker) Add(title, date, startTime, endTime string) (model.Meeting, error) {
	meeting := model.Meeting{
		ID:        t.newID(),
		Title:     strings.TrimSpace(title),
		Date:      strings.TrimSpace(date),
		StartTime: strings.TrimSpace(startTime),
		EndTime:   strings.TrimSpace(endTime),
	}
	if err := meeting.Validate(); err != nil {
		return model.Meeting{}, err
	}
	t.meetings = append(t.meetings, meeting)
	sort.SliceStable(t.meetings, func(i, j int) bool {
		if t.meetings[i].Date != t.meetings[j].Date {
			return t.meetings[i].Date < t.meetings[j].Date
		}
		return t.meetings[i].StartTime < t.meetings[j].StartTime
	})
	if err := t.conn.Set(store.KeyMeetings, t.meetings); err != nil {
		return model.Meeting{}, err
	}
	return meeting, nil
}

func (t *MeetingTracker) Remove(id string) error {
	kept := t.meetings[:0]
	found := false
	for _, meeting := range t.meetings {
		if meeting.ID == id {
			found = true
			continue
		}
		kept = append(kept, meeting)
	}
	if !found {
		return ErrMeetingNotFound
	}
	t.meetings = kept
	return t.conn.Set(store.KeyMeetings, t.meetings)
}

// List returns a copy of the stored meetings.
func (t *MeetingTracker) List() []model.Meeting {
	out := make([]model.Meeting, len(t.meetings))
	copy(out, t.meetings)
	return out
}

// CompletedMinutes sums the durations of meetings on date that have already
// concluded at nowHHMM. Malformed entries are skipped item by item so one
// bad record never blocks the rest of the evaluation.
func (t *MeetingTracker) CompletedMinutes(date, nowHHMM string) int {
	nowMin, err := model.ParseClockMinutes(nowHHMM)
	if err != nil {
		return 0
	}
	total := 0
	for _, meeting := range t.meetings {
		if meeting.Date != date {
			continue
		}
		endMin, err := model.ParseClockMinutes(meeting.EndTime)
		if err != nil || endMin > nowMin {
			continue
		}
		minutes, err := meeting.DurationMinutes()
		if err != nil {
			continue
		}
		total += minutes
	}
	return total
}

// Reload rebuilds the in-memory mirror from the persisted list.
func (t *MeetingTracker) Reload() {
	meetings := make([]model.Meeting, 0)
	t.conn.Get(store.KeyMeetings, &meetings)
	t.meetings = meetings
}
