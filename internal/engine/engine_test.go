package engine

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/store"
)

func newTestEngine(t *testing.T, conn *store.Conn, cfg Config) *Engine {
	t.Helper()
	catalog, err := model.DefaultCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	eng := New(conn, catalog, cfg,
		WithNow(func() time.Time { return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC) }),
		WithRand(rand.New(rand.NewSource(1))),
		WithMeetingIDs(sequentialIDs("mtg")),
	)
	t.Cleanup(eng.Stop)
	return eng
}

func at(hhmm string) time.Time {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(2026, 8, 31, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}

func kinds(events []Event, kind EventKind) []Event {
	var matched []Event
	for _, ev := range events {
		if ev.Kind == kind {
			matched = append(matched, ev)
		}
	}
	return matched
}

func TestEngineWorkThresholdFiresOnceWithSuggestion(t *testing.T) {
	eng := newTestEngine(t, newTestConn(t), Config{ThresholdSeconds: 3, PostponeLeadSeconds: 2, Buffer: 8})
	eng.StartWork()

	var fired []Event
	for i := 0; i < 10; i++ {
		fired = append(fired, kinds(eng.Tick(at("09:00")), EventWorkThreshold)...)
	}
	if len(fired) != 1 {
		t.Fatalf("expected one work-threshold event, got %d", len(fired))
	}
	ev := fired[0]
	if ev.Activity == nil {
		t.Fatal("work-threshold event must carry a suggested activity")
	}
	if err := ev.Activity.Validate(); err != nil {
		t.Fatalf("suggested activity invalid: %v", err)
	}
	if ev.Title == "" || ev.Body == "" {
		t.Fatalf("event must carry display text: %+v", ev)
	}

	eng.ResetWorkTimer()
	fired = fired[:0]
	for i := 0; i < 5; i++ {
		fired = append(fired, kinds(eng.Tick(at("09:01")), EventWorkThreshold)...)
	}
	if len(fired) != 1 {
		t.Fatalf("expected one event after reset, got %d", len(fired))
	}
}

func TestEngineWorkTimerIgnoredWhilePaused(t *testing.T) {
	eng := newTestEngine(t, newTestConn(t), Config{ThresholdSeconds: 2, PostponeLeadSeconds: 1, Buffer: 8})

	for i := 0; i < 5; i++ {
		if events := kinds(eng.Tick(at("09:00")), EventWorkThreshold); len(events) != 0 {
			t.Fatal("paused timer must not fire")
		}
	}
	if eng.WorkSeconds() != 0 {
		t.Fatalf("paused timer advanced to %d", eng.WorkSeconds())
	}
}

func TestEnginePostponeReminder(t *testing.T) {
	eng := newTestEngine(t, newTestConn(t), Config{ThresholdSeconds: 10, PostponeLeadSeconds: 4, Buffer: 8})
	eng.StartWork()

	for i := 0; i < 10; i++ {
		eng.Tick(at("09:00"))
	}
	eng.PostponeReminder()
	if eng.WorkSeconds() != 6 {
		t.Fatalf("expected counter re-armed to 6, got %d", eng.WorkSeconds())
	}

	fired := 0
	for i := 0; i < 4; i++ {
		fired += len(kinds(eng.Tick(at("09:01")), EventWorkThreshold))
	}
	if fired != 1 {
		t.Fatalf("expected one event after postpone, got %d", fired)
	}
}

func TestEngineScheduledBreakFiresOncePerDay(t *testing.T) {
	eng := newTestEngine(t, newTestConn(t), Config{ThresholdSeconds: 3600, PostponeLeadSeconds: 300, Buffer: 8})
	brk, err := eng.AddBreak("09:30", 5)
	if err != nil {
		t.Fatalf("add break: %v", err)
	}

	if events := kinds(eng.Tick(at("09:29")), EventScheduledBreak); len(events) != 0 {
		t.Fatalf("break fired early: %+v", events)
	}

	fired := kinds(eng.Tick(at("09:30")), EventScheduledBreak)
	if len(fired) != 1 {
		t.Fatalf("expected one break event, got %d", len(fired))
	}
	if fired[0].BreakID != brk.ID || fired[0].Title != "Break Time!" {
		t.Fatalf("unexpected break event: %+v", fired[0])
	}

	// Repeated ticks within the same minute and later the same day stay quiet.
	for _, hhmm := range []string{"09:30", "09:30", "09:31"} {
		if events := kinds(eng.Tick(at(hhmm)), EventScheduledBreak); len(events) != 0 {
			t.Fatalf("break must fire once per day, refired at %s", hhmm)
		}
	}

	// The following day the same break is armed again.
	nextDay := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	if events := kinds(eng.Tick(nextDay), EventScheduledBreak); len(events) != 1 {
		t.Fatalf("expected daily recurrence, got %d events", len(events))
	}
}

func TestEngineRemoveBreakRearmsDedup(t *testing.T) {
	eng := newTestEngine(t, newTestConn(t), Config{ThresholdSeconds: 3600, PostponeLeadSeconds: 300, Buffer: 8})
	brk, _ := eng.AddBreak("09:30", 5)
	eng.Tick(at("09:30"))

	if err := eng.RemoveBreak(brk.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(eng.Breaks()) != 0 {
		t.Fatal("expected empty break list")
	}
}

func TestEngineMeetingLoadNotifiesPerCompletedHour(t *testing.T) {
	eng := newTestEngine(t, newTestConn(t), Config{ThresholdSeconds: 3600, PostponeLeadSeconds: 300, Buffer: 8})
	if _, err := eng.AddMeeting("Planning", "2026-08-31", "09:00", "11:30"); err != nil {
		t.Fatalf("add meeting: %v", err)
	}

	if events := kinds(eng.Tick(at("10:00")), EventMeetingLoad); len(events) != 0 {
		t.Fatal("running meeting must not count toward load")
	}

	fired := kinds(eng.Tick(at("11:30")), EventMeetingLoad)
	if len(fired) != 2 {
		t.Fatalf("expected events for hours 1 and 2, got %d", len(fired))
	}
	if fired[0].Hour != 1 || fired[1].Hour != 2 {
		t.Fatalf("expected ascending hours, got %+v", fired)
	}

	// Re-evaluating the same total stays quiet; dedup is per hour per day.
	if events := kinds(eng.Tick(at("12:00")), EventMeetingLoad); len(events) != 0 {
		t.Fatalf("expected no repeat events, got %+v", events)
	}

	if got := eng.MeetingMinutesCompleted(at("11:30")); got != 150 {
		t.Fatalf("expected 150 completed minutes, got %d", got)
	}
}

func TestEngineMirrorsOtherContextWrites(t *testing.T) {
	hub := store.NewHub(store.NewMemoryBackend())
	engConn := hub.Conn()
	defer engConn.Close()
	otherConn := hub.Conn()
	defer otherConn.Close()

	eng := newTestEngine(t, engConn, Config{ThresholdSeconds: 3600, PostponeLeadSeconds: 300, Buffer: 8})

	// Another context replaces the break list wholesale.
	seeded := []model.ScheduledBreak{{ID: "remote-1", Time: "10:00", DurationMinutes: 5}}
	if err := otherConn.Set(store.KeyScheduledBreaks, seeded); err != nil {
		t.Fatalf("remote set: %v", err)
	}

	breaks := eng.Breaks()
	if len(breaks) != 1 || breaks[0].ID != "remote-1" {
		t.Fatalf("expected engine to mirror remote write, got %+v", breaks)
	}

	fired := kinds(eng.Tick(at("10:00")), EventScheduledBreak)
	if len(fired) != 1 || fired[0].BreakID != "remote-1" {
		t.Fatalf("expected remote break to fire, got %+v", fired)
	}
}

func TestEnginesSharingHubTickConcurrently(t *testing.T) {
	hub := store.NewHub(store.NewMemoryBackend())
	connA := hub.Conn()
	defer connA.Close()
	connB := hub.Conn()
	defer connB.Close()

	cfg := Config{ThresholdSeconds: 3600, PostponeLeadSeconds: 300, Buffer: 8}
	engA := newTestEngine(t, connA, cfg)
	engB := newTestEngine(t, connB, cfg)
	engA.StartWork()
	engB.StartWork()

	// Each tick persists work seconds, which notifies the peer engine while
	// the writer still holds its own mutex. Both directions at once must not
	// wedge.
	var wg sync.WaitGroup
	for _, eng := range []*Engine{engA, engB} {
		wg.Add(1)
		go func(eng *Engine) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				eng.Tick(at("09:00"))
			}
		}(eng)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("concurrent ticks across a shared hub did not finish")
	}
}

func TestEngineStartStopTeardown(t *testing.T) {
	eng := newTestEngine(t, newTestConn(t), Config{ThresholdSeconds: 3600, PostponeLeadSeconds: 300, Buffer: 8})
	eng.Start()
	eng.Stop()

	select {
	case _, open := <-eng.C():
		if open {
			t.Fatal("expected no buffered events after stop")
		}
	case <-time.After(time.Second):
		t.Fatal("event channel must close after stop")
	}

	// Stop is idempotent.
	eng.Stop()
}

func TestEngineSetWorkThreshold(t *testing.T) {
	eng := newTestEngine(t, newTestConn(t), Config{ThresholdSeconds: 3600, PostponeLeadSeconds: 300, Buffer: 8})
	eng.SetWorkThreshold(45 * 60)
	if got := eng.WorkThreshold(); got != 45*60 {
		t.Fatalf("expected threshold 2700, got %d", got)
	}
	eng.SetWorkThreshold(0)
	if got := eng.WorkThreshold(); got != 45*60 {
		t.Fatalf("non-positive threshold must be ignored, got %d", got)
	}
}
