package suggest

import (
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/breakd/internal/model"
)

func entryAt(i int, at time.Time) model.CompletionEntry {
	return model.CompletionEntry{
		ActivityID:      fmt.Sprintf("act-%d", i),
		Category:        model.CategoryMental,
		Title:           "Breathing",
		Timestamp:       at.UnixMilli(),
		DurationSeconds: 90,
		Action:          model.ActionComplete,
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	history := NewHistory(newTestConn(t), 10)
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if err := history.Record(entryAt(i, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	entries := history.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ActivityID != "act-2" || entries[2].ActivityID != "act-0" {
		t.Fatalf("expected newest first, got %s..%s", entries[0].ActivityID, entries[2].ActivityID)
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	const limit = 5
	history := NewHistory(newTestConn(t), limit)
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	for i := 0; i < limit+3; i++ {
		if err := history.Record(entryAt(i, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	entries := history.Entries()
	if len(entries) != limit {
		t.Fatalf("expected exactly %d entries, got %d", limit, len(entries))
	}
	if entries[0].ActivityID != "act-7" {
		t.Fatalf("expected newest entry act-7 first, got %s", entries[0].ActivityID)
	}
	if entries[limit-1].ActivityID != "act-3" {
		t.Fatalf("expected oldest surviving entry act-3, got %s", entries[limit-1].ActivityID)
	}
}

func TestHistoryRejectsInvalidEntry(t *testing.T) {
	history := NewHistory(newTestConn(t), 10)
	bad := model.CompletionEntry{ActivityID: "", Action: model.ActionComplete, Timestamp: 1}
	if err := history.Record(bad); err == nil {
		t.Fatal("expected validation error")
	}
	if len(history.Entries()) != 0 {
		t.Fatal("invalid entry must not be persisted")
	}
}

func TestCompletedToday(t *testing.T) {
	history := NewHistory(newTestConn(t), 10)
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	if err := history.Record(entryAt(0, now.Add(-2*time.Hour))); err != nil {
		t.Fatalf("record today: %v", err)
	}
	skip := entryAt(1, now.Add(-time.Hour))
	skip.Action = model.ActionSkip
	if err := history.Record(skip); err != nil {
		t.Fatalf("record skip: %v", err)
	}
	if err := history.Record(entryAt(2, now.AddDate(0, 0, -1))); err != nil {
		t.Fatalf("record yesterday: %v", err)
	}

	if got := history.CompletedToday(now); got != 2 {
		t.Fatalf("expected 2 entries today, got %d", got)
	}
}

func TestHistoryReset(t *testing.T) {
	history := NewHistory(newTestConn(t), 10)
	if err := history.Record(entryAt(0, time.Now())); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := history.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(history.Entries()) != 0 {
		t.Fatal("expected empty history after reset")
	}
}
