package session

import (
	"github.com/sandeepkv93/breakd/internal/model"
)

// State is the lifecycle phase of one activity run.
type State string

const (
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// Session counts one activity down to zero. The countdown only advances while
// running, and completion is terminal: between Tick and Finish, exactly one
// call reports true, so the caller records the outcome at most once.
// Discarding a session before completion leaves no trace.
type Session struct {
	activity  model.Activity
	remaining int
	state     State
}

// New starts a running session for the activity.
func New(activity model.Activity) *Session {
	return &Session{
		activity:  activity,
		remaining: activity.DurationSeconds,
		state:     StateRunning,
	}
}

// Tick advances the countdown by one second and reports whether the session
// just completed. Paused and completed sessions do not move.
func (s *Session) Tick() bool {
	if s.state != StateRunning {
		return false
	}
	s.remaining--
	if s.remaining > 0 {
		return false
	}
	s.complete()
	return true
}

// Pause suspends the countdown. Completed sessions stay completed.
func (s *Session) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Resume restarts a paused countdown.
func (s *Session) Resume() {
	if s.state == StatePaused {
		s.state = StateRunning
	}
}

// Finish ends the session immediately, as if the countdown had run out. It
// reports whether this call completed the session; finishing an already
// completed session is a no-op.
func (s *Session) Finish() bool {
	if s.state == StateCompleted {
		return false
	}
	s.complete()
	return true
}

func (s *Session) complete() {
	s.state = StateCompleted
	s.remaining = 0
}

// Remaining returns the seconds left, never negative.
func (s *Session) Remaining() int {
	return s.remaining
}

func (s *Session) State() State { return s.state }

func (s *Session) Activity() model.Activity { return s.activity }
