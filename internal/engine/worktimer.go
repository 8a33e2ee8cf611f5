package engine

import (
	"github.com/sandeepkv93/breakd/internal/store"
)

// WorkTimer accumulates continuous work seconds. The counter is persisted on
// every tick so an interrupted session resumes where it left off.
type WorkTimer struct {
	conn      *store.Conn
	threshold int
	seconds   int
	running   bool
}

func NewWorkTimer(conn *store.Conn, thresholdSeconds int) *WorkTimer {
	t := &WorkTimer{conn: conn, threshold: thresholdSeconds}
	t.reload()
	return t
}

// Tick advances the counter by one second when running and reports whether
// the counter just reached the threshold. The comparison is strict equality:
// the trigger fires once per accumulation run because Reset is the only way
// back below the threshold.
func (t *WorkTimer) Tick() bool {
	if !t.running {
		return false
	}
	t.seconds++
	_ = t.conn.Set(store.KeyWorkSeconds, t.seconds)
	return t.seconds == t.threshold
}

// Reset zeroes the counter. Called when the user begins an activity.
func (t *WorkTimer) Reset() {
	t.seconds = 0
	_ = t.conn.Set(store.KeyWorkSeconds, t.seconds)
}

// Postpone re-arms the counter lead seconds before the threshold, so the
// next prompt arrives after that much more work.
func (t *WorkTimer) Postpone(leadSeconds int) {
	next := t.threshold - leadSeconds
	if next < 0 {
		next = 0
	}
	t.seconds = next
	_ = t.conn.Set(store.KeyWorkSeconds, t.seconds)
}

func (t *WorkTimer) Snapshot() int { return t.seconds }

func (t *WorkTimer) Running() bool { return t.running }

func (t *WorkTimer) Start() { t.running = true }

func (t *WorkTimer) Pause() { t.running = false }

func (t *WorkTimer) Threshold() int { return t.threshold }

// SetThreshold changes the break interval. A counter already past the new
// threshold will not fire until the next Reset; equality ticks still fire.
func (t *WorkTimer) SetThreshold(seconds int) {
	if seconds > 0 {
		t.threshold = seconds
	}
}

func (t *WorkTimer) reload() {
	seconds := 0
	t.conn.Get(store.KeyWorkSeconds, &seconds)
	if seconds < 0 {
		seconds = 0
	}
	t.seconds = seconds
}
