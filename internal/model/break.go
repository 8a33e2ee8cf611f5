package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBreakTime     = errors.New("model: break time is required")
	ErrInvalidBreakDuration = errors.New("model: break duration must be 1-60 minutes")
)

// ScheduledBreak is a fixed time-of-day break. The id is derived from the
// creation instant so re-adding the same time yields a distinct trigger.
type ScheduledBreak struct {
	ID              string `json:"id"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
}

func (b ScheduledBreak) Validate() error {
	if b.Time == "" {
		return ErrInvalidBreakTime
	}
	if !ValidClockTime(b.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidClockTime, b.Time)
	}
	if b.DurationMinutes < 1 || b.DurationMinutes > 60 {
		return fmt.Errorf("%w: got %d", ErrInvalidBreakDuration, b.DurationMinutes)
	}
	return nil
}
