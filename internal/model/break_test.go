package model

import (
	"errors"
	"testing"
)

func TestScheduledBreakValidate(t *testing.T) {
	valid := ScheduledBreak{ID: "1756600000000", Time: "09:00", DurationMinutes: 5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid break, got %v", err)
	}

	cases := []struct {
		name    string
		brk     ScheduledBreak
		wantErr error
	}{
		{"empty time", ScheduledBreak{ID: "1", Time: "", DurationMinutes: 5}, ErrInvalidBreakTime},
		{"bad time", ScheduledBreak{ID: "1", Time: "25:00", DurationMinutes: 5}, ErrInvalidClockTime},
		{"zero duration", ScheduledBreak{ID: "1", Time: "09:00", DurationMinutes: 0}, ErrInvalidBreakDuration},
		{"too long", ScheduledBreak{ID: "1", Time: "09:00", DurationMinutes: 61}, ErrInvalidBreakDuration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.brk.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
