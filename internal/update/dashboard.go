package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/breakd/internal/model"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Dashboard.Cursor > 0 {
			m.Dashboard.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Dashboard.Cursor < len(m.Catalog)-1 {
			m.Dashboard.Cursor++
		}
		return m, nil
	case "enter", "t":
		if activity, ok := m.selectedActivity(); ok {
			return m.startSession(activity)
		}
		return m, nil
	case "s":
		return m.toggleWorkTracking()
	}
	return m, nil
}

// toggleWorkTracking starts or pauses work-second accumulation. Nothing
// accumulates until the user starts tracking, so this is the entry point for
// the whole reminder cycle.
func (m Model) toggleWorkTracking() (tea.Model, tea.Cmd) {
	if m.Engine == nil {
		return m, nil
	}
	if m.Engine.WorkRunning() {
		m.Engine.PauseWork()
		m.Status = StatusBar{Text: "work tracking paused", IsError: false}
	} else {
		m.Engine.StartWork()
		m.Status = StatusBar{Text: "work tracking started", IsError: false}
	}
	return m, nil
}

func (m Model) selectedActivity() (model.Activity, bool) {
	if len(m.Catalog) == 0 {
		return model.Activity{}, false
	}
	if m.Dashboard.Cursor < 0 || m.Dashboard.Cursor >= len(m.Catalog) {
		return model.Activity{}, false
	}
	return m.Catalog[m.Dashboard.Cursor], true
}
