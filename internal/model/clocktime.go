package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClockTime = errors.New("model: invalid clock time")

// ParseClockMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. Trigger evaluation works at minute granularity throughout.
func ParseClockMinutes(hhmm string) (int, error) {
	h, m, err := splitClock(hhmm)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

func splitClock(hhmm string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, hhmm)
	}
	return h, m, nil
}

// ValidClockTime reports whether hhmm parses as a 24-hour "HH:MM" value.
func ValidClockTime(hhmm string) bool {
	_, _, err := splitClock(hhmm)
	return err == nil
}

// DateKey renders the persisted date form, e.g. "2026-08-31".
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClockKey renders the minute-granular wall-clock form, e.g. "09:05".
func ClockKey(t time.Time) string {
	return t.Format("15:04")
}

// Format12Hour converts "HH:MM" to a 12-hour display string.
func Format12Hour(hhmm string) string {
	h, m, err := splitClock(hhmm)
	if err != nil {
		return hhmm
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// FormatSeconds renders an elapsed-seconds counter as "Xh Ym" past the hour
// mark and "MM:SS" below it.
func FormatSeconds(sec int) string {
	if sec < 0 {
		sec = 0
	}
	s := sec % 60
	m := (sec / 60) % 60
	h := sec / 3600
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatCountdown renders remaining seconds as "M:SS".
func FormatCountdown(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
