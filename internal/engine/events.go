package engine

import (
	"time"

	"github.com/sandeepkv93/breakd/internal/model"
)

type EventKind string

const (
	// EventWorkThreshold fires when the work counter reaches the interval.
	EventWorkThreshold EventKind = "work-threshold"
	// EventScheduledBreak fires when wall-clock time matches a scheduled break.
	EventScheduledBreak EventKind = "scheduled-break"
	// EventMeetingLoad fires once per newly completed hour of meetings.
	EventMeetingLoad EventKind = "meeting-load"
)

// Event is one notification request produced by trigger evaluation. Work
// threshold events carry the suggested activity; the other kinds identify
// their trigger so consumers can reconcile against dedup state.
type Event struct {
	Kind     EventKind
	Title    string
	Body     string
	Activity *model.Activity
	BreakID  string
	Date     string
	Hour     int
	At       time.Time
}
