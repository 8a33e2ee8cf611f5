package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/session"
)

// startSession begins an activity run. The work counter resets the moment the
// break starts and stays paused until the session ends one way or another.
func (m Model) startSession(activity model.Activity) (Model, tea.Cmd) {
	if m.Engine != nil {
		m.Engine.ResetWorkTimer()
		m.Engine.PauseWork()
	}
	m.Session = session.New(activity)
	m.CurrentView = ViewActivity
	m.Status = StatusBar{Text: fmt.Sprintf("started: %s", activity.Title), IsError: false}
	m.sessionTickSeq++
	return m, sessionTickCmd(m.sessionTickSeq)
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Session == nil {
		if msg.String() == "esc" {
			m.CurrentView = ViewDashboard
		}
		return m, nil
	}

	switch msg.String() {
	case " ":
		switch m.Session.State() {
		case session.StateRunning:
			m.Session.Pause()
			// Bumping the sequence orphans the tick already in flight.
			m.sessionTickSeq++
			m.Status = StatusBar{Text: "activity paused", IsError: false}
			return m, nil
		case session.StatePaused:
			m.Session.Resume()
			m.sessionTickSeq++
			m.Status = StatusBar{Text: "activity resumed", IsError: false}
			return m, sessionTickCmd(m.sessionTickSeq)
		}
		return m, nil
	case "f", "enter":
		if m.Session.Finish() {
			return m.finishSession(model.ActionComplete), nil
		}
		return m, nil
	case "s":
		if m.Session.State() != session.StateCompleted {
			return m.abandonWithSkip(), nil
		}
		return m, nil
	case "esc":
		// Leaving early is silent abandonment: nothing is recorded.
		m.Session = nil
		if m.Engine != nil {
			m.Engine.StartWork()
		}
		m.CurrentView = ViewDashboard
		m.Status = StatusBar{Text: "activity abandoned", IsError: false}
		return m, nil
	}
	return m, nil
}

func (m Model) onSessionTick(msg SessionTickMsg) (tea.Model, tea.Cmd) {
	if m.Session == nil || msg.Seq != m.sessionTickSeq {
		return m, nil
	}
	if m.Session.Tick() {
		return m.finishSession(model.ActionComplete), nil
	}
	if m.Session.State() == session.StateRunning {
		return m, sessionTickCmd(m.sessionTickSeq)
	}
	return m, nil
}

// finishSession records the completed activity and resumes work tracking.
// The session is already in its terminal state by the time this runs, so the
// record happens at most once per session.
func (m Model) finishSession(action model.Action) Model {
	activity := m.Session.Activity()
	m.Session = nil
	m.CurrentView = ViewDashboard
	m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", activity.Title), IsError: false}
	m.recordOutcome(activity, action)
	m.notify("Break complete", activity.Title, "info")
	return m
}

func (m Model) abandonWithSkip() Model {
	activity := m.Session.Activity()
	m.Session = nil
	m.CurrentView = ViewDashboard
	m.Status = StatusBar{Text: fmt.Sprintf("skipped: %s", activity.Title), IsError: false}
	m.recordOutcome(activity, model.ActionSkip)
	return m
}

// recordOutcome appends the history entry, nudges the category weight, and
// restarts work-second accumulation.
func (m *Model) recordOutcome(activity model.Activity, action model.Action) {
	entry := model.CompletionEntry{
		ActivityID:      activity.ID,
		Category:        activity.Category,
		Title:           activity.Title,
		Timestamp:       m.now().UnixMilli(),
		DurationSeconds: activity.DurationSeconds,
		Action:          action,
	}
	if m.History != nil {
		if err := m.History.Record(entry); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("record history: %v", err), IsError: true}
		}
	}
	if m.Prefs != nil {
		if _, err := m.Prefs.Apply(activity.Category, action); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("update preference: %v", err), IsError: true}
		}
	}
	if m.Engine != nil {
		m.Engine.StartWork()
	}
}

// handlePromptKey drives the break-prompt modal raised by a work-threshold
// trigger: start the suggested activity, push the reminder out, or skip.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "enter":
		m.Prompt.Active = false
		if m.Prompt.Activity != nil {
			activity := *m.Prompt.Activity
			m.Prompt.Activity = nil
			return m.startSession(activity)
		}
		if m.Engine != nil {
			m.Engine.ResetWorkTimer()
		}
		return m, nil
	case "l":
		m.Prompt.Active = false
		m.Prompt.Activity = nil
		if m.Engine != nil {
			m.Engine.PostponeReminder()
		}
		m.Status = StatusBar{Text: "reminder postponed", IsError: false}
		return m, nil
	case "x":
		activity := m.Prompt.Activity
		m.Prompt.Active = false
		m.Prompt.Activity = nil
		if activity != nil {
			m.recordOutcome(*activity, model.ActionSkip)
		}
		if m.Engine != nil {
			m.Engine.ResetWorkTimer()
		}
		m.Status = StatusBar{Text: "break skipped", IsError: false}
		return m, nil
	case "esc":
		m.Prompt.Active = false
		m.Prompt.Activity = nil
		return m, nil
	}
	return m, nil
}
