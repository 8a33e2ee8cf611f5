package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/breakd/internal/engine"
	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Engine != nil {
		return waitForEngineEventCmd(m.Engine.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()

		if m.Palette.Active {
			if keyStr == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}
		if m.Prompt.Active {
			return m.handlePromptKey(typed)
		}
		if m.CurrentView == ViewSchedule && m.Schedule.InputMode && keyStr != "ctrl+c" {
			return m.handleScheduleKey(typed)
		}
		if m.CurrentView == ViewCalendar && m.Calendar.InputMode && keyStr != "ctrl+c" {
			return m.handleCalendarKey(typed)
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, nil
		case m.Keys.Schedule:
			m.CurrentView = ViewSchedule
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Activity:
			m.CurrentView = ViewActivity
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewDashboard:
			return m.handleDashboardKey(typed)
		case ViewSchedule:
			return m.handleScheduleKey(typed)
		case ViewCalendar:
			return m.handleCalendarKey(typed)
		case ViewActivity:
			return m.handleActivityKey(typed)
		}

	case EngineEventMsg:
		return m.onEngineEvent(typed.Event)

	case SessionTickMsg:
		return m.onSessionTick(typed)

	case tea.WindowSizeMsg:
		m.Width = typed.Width
		return m, nil

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}

	return m, nil
}

// onEngineEvent folds one trigger into the UI: log it, forward it to the
// desktop notifier, and raise the prompt modal for work-threshold events.
// The command chain re-subscribes to the engine stream afterward.
func (m Model) onEngineEvent(ev engine.Event) (tea.Model, tea.Cmd) {
	m.notify(ev.Title, ev.Body, "info")

	switch ev.Kind {
	case engine.EventWorkThreshold:
		m.Prompt.Active = true
		m.Prompt.Activity = ev.Activity
		m.Status = StatusBar{Text: "time for a microbreak", IsError: false}
	case engine.EventScheduledBreak:
		m.Status = StatusBar{Text: ev.Body, IsError: false}
	case engine.EventMeetingLoad:
		m.Status = StatusBar{Text: ev.Body, IsError: false}
	}

	if m.Engine != nil {
		return m, waitForEngineEventCmd(m.Engine.C())
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderHistoryPane() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewSchedule:
		leftPane = m.renderScheduleView()
		rightPane = m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderHelpIfVisible()
	case ViewActivity:
		leftPane = m.renderActivityView()
		rightPane = m.renderHelpIfVisible()
	}

	notification := m.renderNotificationsView()
	if m.Prompt.Active {
		notification = m.renderPromptModal() + notification
	}

	workLine := ""
	if m.Engine != nil {
		workLine = model.FormatSeconds(m.Engine.WorkSeconds())
	}

	return views.RenderApp(views.AppData{
		Width:        m.Width,
		Header:       fmt.Sprintf("breakd | view: %s | worked: %s", m.CurrentView, workLine),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notification,
		Footer:       fmt.Sprintf("keys: %s dashboard | %s schedule | %s calendar | %s activity | / cmd | %s help | %s quit", m.Keys.Dashboard, m.Keys.Schedule, m.Keys.Calendar, m.Keys.Activity, m.Keys.Help, m.Keys.Quit),
	})
}

func waitForEngineEventCmd(ch <-chan engine.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return EngineEventMsg{Event: ev}
	}
}

func sessionTickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return SessionTickMsg{Seq: seq} })
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewSchedule, ViewCalendar, ViewActivity:
		return true
	default:
		return false
	}
}
