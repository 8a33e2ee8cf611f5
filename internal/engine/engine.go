package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/store"
	"github.com/sandeepkv93/breakd/internal/suggest"
)

// Config carries the tunable engine parameters.
type Config struct {
	// ThresholdSeconds is the continuous-work interval before a prompt.
	ThresholdSeconds int
	// PostponeLeadSeconds is how long before the threshold the counter is
	// re-armed by "remind me later".
	PostponeLeadSeconds int
	// Buffer sizes the outbound event channel.
	Buffer int
}

func DefaultConfig() Config {
	return Config{
		ThresholdSeconds:    60 * 60,
		PostponeLeadSeconds: 5 * 60,
		Buffer:              64,
	}
}

type Option func(*Engine)

// WithNow injects the clock used by the tick loop and id generation.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand injects the jitter source used by activity selection.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithMeetingIDs injects the meeting id generator.
func WithMeetingIDs(newID func() string) Option {
	return func(e *Engine) { e.meetingID = newID }
}

// Engine owns every trigger source: the work timer, the scheduled-break
// registry, the meeting-load tracker, and their shared dedup state. It is
// constructed once per context with an injected clock and store connection
// and torn down deterministically.
type Engine struct {
	mu        sync.Mutex
	conn      *store.Conn
	catalog   []model.Activity
	cfg       Config
	timer     *WorkTimer
	breaks    *BreakRegistry
	meetings  *MeetingTracker
	dedup     *Deduper
	prefs     *suggest.Preferences
	rng       *rand.Rand
	now       func() time.Time
	meetingID func() string

	// dirtyMu guards only the dirty set. Store notifications arrive on the
	// writer's goroutine while that writer may hold its own engine mutex, so
	// they must never take e.mu; they mark keys here and the next operation
	// under e.mu folds them in.
	dirtyMu sync.Mutex
	dirty   map[string]bool

	out     chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
	unwatch func()
}

func New(conn *store.Conn, catalog []model.Activity, cfg Config, opts ...Option) *Engine {
	if cfg.ThresholdSeconds <= 0 {
		cfg.ThresholdSeconds = DefaultConfig().ThresholdSeconds
	}
	if cfg.PostponeLeadSeconds <= 0 {
		cfg.PostponeLeadSeconds = DefaultConfig().PostponeLeadSeconds
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1
	}

	e := &Engine{
		conn:      conn,
		catalog:   catalog,
		cfg:       cfg,
		prefs:     suggest.NewPreferences(conn),
		now:       time.Now,
		meetingID: uuid.NewString,
		dirty:     make(map[string]bool),
		out:       make(chan Event, cfg.Buffer),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(e.now().UnixNano()))
	}

	e.timer = NewWorkTimer(conn, cfg.ThresholdSeconds)
	e.breaks = NewBreakRegistry(conn, func() string {
		return strconv.FormatInt(e.now().UnixMilli(), 10)
	})
	e.meetings = NewMeetingTracker(conn, e.meetingID)
	e.dedup = NewDeduper(conn)
	e.unwatch = conn.Watch(e.onStoreChange)
	return e
}

// C exposes the outbound event stream.
func (e *Engine) C() <-chan Event {
	return e.out
}

// Start launches the one-second tick loop.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop halts the tick loop and detaches the store watcher. No trigger fires
// after Stop returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	started := e.started
	e.mu.Unlock()

	close(e.stopCh)
	if started {
		<-e.doneCh
	}
	if e.unwatch != nil {
		e.unwatch()
	}
}

// Dropped counts events discarded because the consumer fell behind.
func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

// Tick evaluates every trigger source against now and returns the resulting
// notification requests. Evaluation is best-effort per item: one malformed
// break or meeting never aborts the rest of the tick. Exported so tests can
// drive the engine with a fake clock.
func (e *Engine) Tick(now time.Time) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()

	events := make([]Event, 0, 2)
	date := model.DateKey(now)
	clock := model.ClockKey(now)

	if e.timer.Tick() {
		ev := Event{
			Kind:  EventWorkThreshold,
			Title: "Time for a microbreak",
			Body:  "You have been working for a while. Take a short break.",
			At:    now,
		}
		if act, ok := suggest.Select(e.catalog, e.prefs.Snapshot(), e.rng); ok {
			picked := act
			ev.Activity = &picked
			ev.Body = fmt.Sprintf("Try: %s (%s)", act.Title, model.FormatCountdown(act.DurationSeconds))
		}
		events = append(events, ev)
	}

	for _, brk := range e.breaks.Due(clock, func(id string) bool { return e.dedup.BreakFired(date, id) }) {
		_ = e.dedup.MarkBreakFired(date, brk.ID)
		events = append(events, Event{
			Kind:    EventScheduledBreak,
			Title:   "Break Time!",
			Body:    fmt.Sprintf("Your scheduled %d min break is starting now.", brk.DurationMinutes),
			BreakID: brk.ID,
			Date:    date,
			At:      now,
		})
	}

	hours := e.meetings.CompletedMinutes(date, clock) / 60
	if prev := e.dedup.MeetingCeiling(date); hours > prev {
		for h := prev + 1; h <= hours; h++ {
			events = append(events, Event{
				Kind:  EventMeetingLoad,
				Title: "Meeting load",
				Body:  fmt.Sprintf("%d hour(s) of meetings completed today. Consider a recovery break.", h),
				Date:  date,
				Hour:  h,
				At:    now,
			})
		}
		_ = e.dedup.RaiseMeetingCeiling(date, hours)
	}

	return events
}

// StartWork resumes work-second accumulation.
func (e *Engine) StartWork() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	e.timer.Start()
}

// PauseWork suspends work-second accumulation.
func (e *Engine) PauseWork() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	e.timer.Pause()
}

func (e *Engine) WorkRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.timer.Running()
}

func (e *Engine) WorkSeconds() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.timer.Snapshot()
}

func (e *Engine) WorkThreshold() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.timer.Threshold()
}

// SetWorkThreshold changes the prompt interval, given in seconds.
func (e *Engine) SetWorkThreshold(seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	e.timer.SetThreshold(seconds)
}

// ResetWorkTimer zeroes the work counter. Called exactly when the user
// begins an activity.
func (e *Engine) ResetWorkTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	e.timer.Reset()
}

// PostponeReminder re-arms the next prompt a few minutes out.
func (e *Engine) PostponeReminder() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	e.timer.Postpone(e.cfg.PostponeLeadSeconds)
}

func (e *Engine) AddBreak(hhmm string, durationMinutes int) (model.ScheduledBreak, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.breaks.Add(hhmm, durationMinutes)
}

// RemoveBreak deletes the break and clears its dedup records so a re-added
// break at the same time starts fresh.
func (e *Engine) RemoveBreak(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	if err := e.breaks.Remove(id); err != nil {
		return err
	}
	return e.dedup.ClearBreak(id)
}

func (e *Engine) Breaks() []model.ScheduledBreak {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.breaks.List()
}

func (e *Engine) AddMeeting(title, date, startTime, endTime string) (model.Meeting, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.meetings.Add(title, date, startTime, endTime)
}

func (e *Engine) RemoveMeeting(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.meetings.Remove(id)
}

func (e *Engine) Meetings() []model.Meeting {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.meetings.List()
}

// MeetingMinutesCompleted reports the concluded meeting minutes for now's
// calendar day, for display alongside the hourly trigger.
func (e *Engine) MeetingMinutesCompleted(now time.Time) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyDirtyLocked()
	return e.meetings.CompletedMinutes(model.DateKey(now), model.ClockKey(now))
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.emit(e.Tick(e.now()))
		case <-e.stopCh:
			return
		}
	}
}

func (e *Engine) emit(events []Event) {
	for _, ev := range events {
		select {
		case e.out <- ev:
		default:
			atomic.AddUint64(&e.dropped, 1)
		}
	}
}

// onStoreChange records that another context wrote one of the engine's keys.
// It deliberately takes only dirtyMu: the notification runs synchronously on
// the writer's goroutine, and a writer that is itself an engine holds its own
// mutex at that point. Taking e.mu here would order the two engine mutexes
// both ways round and deadlock concurrent ticks on a shared hub.
func (e *Engine) onStoreChange(key string) {
	e.dirtyMu.Lock()
	e.dirty[key] = true
	e.dirtyMu.Unlock()
}

// applyDirtyLocked rebuilds the in-memory mirrors for every key written by
// another context since the last operation (last writer wins). Caller holds
// e.mu.
func (e *Engine) applyDirtyLocked() {
	e.dirtyMu.Lock()
	if len(e.dirty) == 0 {
		e.dirtyMu.Unlock()
		return
	}
	dirty := e.dirty
	e.dirty = make(map[string]bool)
	e.dirtyMu.Unlock()

	for key := range dirty {
		switch key {
		case store.KeyScheduledBreaks:
			e.breaks.Reload()
		case store.KeyMeetings:
			e.meetings.Reload()
		case store.KeyFiredBreaks, store.KeyMeetingHours:
			e.dedup.Reload()
		case store.KeyWorkSeconds:
			e.timer.reload()
		}
	}
}
