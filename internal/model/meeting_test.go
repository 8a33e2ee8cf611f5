package model

import (
	"errors"
	"testing"
)

func TestMeetingValidate(t *testing.T) {
	valid := Meeting{
		ID:        "m-1",
		Title:     "Design review",
		Date:      "2026-08-31",
		StartTime: "09:00",
		EndTime:   "10:30",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid meeting, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Meeting)
	}{
		{"missing id", func(m *Meeting) { m.ID = "" }},
		{"missing title", func(m *Meeting) { m.Title = "  " }},
		{"bad date", func(m *Meeting) { m.Date = "31/08/2026" }},
		{"bad start", func(m *Meeting) { m.StartTime = "9am" }},
		{"bad end", func(m *Meeting) { m.EndTime = "" }},
		{"end equals start", func(m *Meeting) { m.EndTime = m.StartTime }},
		{"end before start", func(m *Meeting) { m.StartTime = "11:00" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meeting := valid
			tc.mutate(&meeting)
			if err := meeting.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestMeetingOrderSentinel(t *testing.T) {
	meeting := Meeting{ID: "m-1", Title: "Sync", Date: "2026-08-31", StartTime: "10:00", EndTime: "09:00"}
	if err := meeting.Validate(); !errors.Is(err, ErrMeetingOrder) {
		t.Fatalf("expected ErrMeetingOrder, got %v", err)
	}
}

func TestMeetingDurationMinutes(t *testing.T) {
	meeting := Meeting{ID: "m-1", Title: "Sync", Date: "2026-08-31", StartTime: "09:15", EndTime: "10:45"}
	got, err := meeting.DurationMinutes()
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if got != 90 {
		t.Fatalf("expected 90 minutes, got %d", got)
	}

	meeting.EndTime = "bad"
	if _, err := meeting.DurationMinutes(); err == nil {
		t.Fatal("expected error for malformed end time")
	}
}
