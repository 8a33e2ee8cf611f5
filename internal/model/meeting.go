package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrMeetingOrder = errors.New("model: meeting end time must be after start time")

// Meeting is a user-entered calendar entry. Only concluded meetings count
// toward the meeting-load trigger.
type Meeting struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (m Meeting) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("model: meeting id is required")
	}
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("model: meeting title is required")
	}
	if _, err := time.Parse("2006-01-02", m.Date); err != nil {
		return fmt.Errorf("model: invalid meeting date %q", m.Date)
	}
	start, err := ParseClockMinutes(m.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClockMinutes(m.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("%w: %s-%s", ErrMeetingOrder, m.StartTime, m.EndTime)
	}
	return nil
}

// DurationMinutes returns endTime-startTime in minutes, or an error when
// either bound is malformed.
func (m Meeting) DurationMinutes() (int, error) {
	start, err := ParseClockMinutes(m.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClockMinutes(m.EndTime)
	if err != nil {
		return 0, err
	}
	if end <= start {
		return 0, fmt.Errorf("%w: %s-%s", ErrMeetingOrder, m.StartTime, m.EndTime)
	}
	return end - start, nil
}
