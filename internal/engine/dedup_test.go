package engine

import (
	"testing"

	"github.com/sandeepkv93/breakd/internal/store"
)

func TestDeduperBreakFiredKeyedByDate(t *testing.T) {
	dedup := NewDeduper(newTestConn(t))

	if dedup.BreakFired("2026-08-31", "brk-1") {
		t.Fatal("fresh deduper must report nothing fired")
	}
	if err := dedup.MarkBreakFired("2026-08-31", "brk-1"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !dedup.BreakFired("2026-08-31", "brk-1") {
		t.Fatal("expected fired on the marked date")
	}
	if dedup.BreakFired("2026-09-01", "brk-1") {
		t.Fatal("breaks recur daily, next day must be re-armed")
	}
	if dedup.BreakFired("2026-08-31", "brk-2") {
		t.Fatal("other break ids must be unaffected")
	}
}

func TestDeduperClearBreak(t *testing.T) {
	dedup := NewDeduper(newTestConn(t))
	dedup.MarkBreakFired("2026-08-30", "brk-1")
	dedup.MarkBreakFired("2026-08-31", "brk-1")
	dedup.MarkBreakFired("2026-08-31", "brk-2")

	if err := dedup.ClearBreak("brk-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if dedup.BreakFired("2026-08-30", "brk-1") || dedup.BreakFired("2026-08-31", "brk-1") {
		t.Fatal("cleared break must be re-armed on every date")
	}
	if !dedup.BreakFired("2026-08-31", "brk-2") {
		t.Fatal("other break records must survive the clear")
	}
}

func TestDeduperMeetingCeilingIsMonotonic(t *testing.T) {
	dedup := NewDeduper(newTestConn(t))

	if got := dedup.MeetingCeiling("2026-08-31"); got != 0 {
		t.Fatalf("absent date must read as zero, got %d", got)
	}
	if err := dedup.RaiseMeetingCeiling("2026-08-31", 2); err != nil {
		t.Fatalf("raise: %v", err)
	}
	if err := dedup.RaiseMeetingCeiling("2026-08-31", 1); err != nil {
		t.Fatalf("lower raise: %v", err)
	}
	if got := dedup.MeetingCeiling("2026-08-31"); got != 2 {
		t.Fatalf("ceiling must never decrease, got %d", got)
	}
	if got := dedup.MeetingCeiling("2026-09-01"); got != 0 {
		t.Fatalf("other dates start at zero, got %d", got)
	}
}

func TestDeduperPersistsAcrossReload(t *testing.T) {
	hub := store.NewHub(store.NewMemoryBackend())
	conn := hub.Conn()
	defer conn.Close()

	dedup := NewDeduper(conn)
	dedup.MarkBreakFired("2026-08-31", "brk-1")
	dedup.RaiseMeetingCeiling("2026-08-31", 3)

	reborn := NewDeduper(conn)
	if !reborn.BreakFired("2026-08-31", "brk-1") {
		t.Fatal("fired break must survive a restart")
	}
	if got := reborn.MeetingCeiling("2026-08-31"); got != 3 {
		t.Fatalf("ceiling must survive a restart, got %d", got)
	}
}

func TestDeduperPrunesStaleDates(t *testing.T) {
	dedup := NewDeduper(newTestConn(t))
	dedup.MarkBreakFired("2026-08-01", "brk-1")
	dedup.RaiseMeetingCeiling("2026-08-01", 4)

	// Marking well past the retention window drops the old date.
	dedup.MarkBreakFired("2026-08-31", "brk-2")
	dedup.RaiseMeetingCeiling("2026-08-31", 1)

	if dedup.BreakFired("2026-08-01", "brk-1") {
		t.Fatal("expected stale break record pruned")
	}
	if got := dedup.MeetingCeiling("2026-08-01"); got != 0 {
		t.Fatalf("expected stale meeting ceiling pruned, got %d", got)
	}
}
