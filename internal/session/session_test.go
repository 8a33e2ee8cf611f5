package session

import (
	"testing"

	"github.com/sandeepkv93/breakd/internal/model"
)

func testActivity(seconds int) model.Activity {
	return model.Activity{
		ID:              "stretch60_01",
		Category:        model.CategoryPhysical,
		Title:           "Desk stretches",
		Description:     "Loosen shoulders and neck.",
		DurationSeconds: seconds,
	}
}

func TestSessionCountsDownToCompletion(t *testing.T) {
	sess := New(testActivity(3))

	if sess.State() != StateRunning {
		t.Fatalf("new session must be running, got %s", sess.State())
	}
	if sess.Tick() || sess.Tick() {
		t.Fatal("session completed early")
	}
	if sess.Remaining() != 1 {
		t.Fatalf("expected 1 second left, got %d", sess.Remaining())
	}
	if !sess.Tick() {
		t.Fatal("final tick must report completion")
	}
	if sess.State() != StateCompleted || sess.Remaining() != 0 {
		t.Fatalf("expected completed at zero, got %s/%d", sess.State(), sess.Remaining())
	}
}

func TestSessionPauseFreezesCountdown(t *testing.T) {
	sess := New(testActivity(5))
	sess.Tick()
	sess.Pause()

	for i := 0; i < 10; i++ {
		if sess.Tick() {
			t.Fatal("paused session must not complete")
		}
	}
	if sess.Remaining() != 4 {
		t.Fatalf("paused countdown moved to %d", sess.Remaining())
	}

	sess.Resume()
	sess.Tick()
	if sess.Remaining() != 3 {
		t.Fatalf("expected 3 after resume, got %d", sess.Remaining())
	}
}

func TestSessionFinishCompletesOnce(t *testing.T) {
	sess := New(testActivity(90))
	sess.Tick()
	if !sess.Finish() {
		t.Fatal("expected first finish to complete the session")
	}

	if sess.State() != StateCompleted || sess.Remaining() != 0 {
		t.Fatalf("expected finished session at zero, got %s/%d", sess.State(), sess.Remaining())
	}

	// Neither repeated Finish nor further ticks report completion again.
	if sess.Finish() {
		t.Fatal("expected repeated finish to be a no-op")
	}
	if sess.Tick() {
		t.Fatal("expected ticks after completion to be no-ops")
	}
}

func TestSessionAutoThenManualFinishReportsOnce(t *testing.T) {
	sess := New(testActivity(1))
	if !sess.Tick() {
		t.Fatal("expected the only tick to complete the session")
	}
	if sess.Finish() {
		t.Fatal("manual finish after auto completion must be a no-op")
	}
}

func TestSessionExposesActivity(t *testing.T) {
	sess := New(testActivity(1))
	if got := sess.Activity(); got.ID != "stretch60_01" {
		t.Fatalf("session carries %+v", got)
	}
}
