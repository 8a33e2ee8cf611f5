package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleScheduleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Schedule.InputMode {
		switch msg.String() {
		case "esc":
			m.Schedule.InputMode = false
			m.scheduleInput.SetValue("")
			m.scheduleInput.Blur()
			m.Status = StatusBar{Text: "add break cancelled", IsError: false}
			return m, nil
		case "enter":
			return m.submitScheduleForm(), nil
		default:
			var cmd tea.Cmd
			m.scheduleInput, cmd = m.scheduleInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "a":
		m.Schedule.InputMode = true
		m.scheduleInput.SetValue("")
		m.scheduleInput.Focus()
		m.Status = StatusBar{Text: "add break: HH:MM minutes", IsError: false}
		return m, nil
	case "up", "k":
		if m.Schedule.Cursor > 0 {
			m.Schedule.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Engine != nil && m.Schedule.Cursor < len(m.Engine.Breaks())-1 {
			m.Schedule.Cursor++
		}
		return m, nil
	case "x", "d":
		return m.removeSelectedBreak(), nil
	}
	return m, nil
}

// submitScheduleForm parses "HH:MM minutes" from the input field.
func (m Model) submitScheduleForm() Model {
	raw := strings.TrimSpace(m.scheduleInput.Value())
	m.Schedule.InputMode = false
	m.scheduleInput.SetValue("")
	m.scheduleInput.Blur()

	fields := strings.Fields(raw)
	if len(fields) != 2 {
		m.Status = StatusBar{Text: "expected: HH:MM minutes", IsError: true}
		return m
	}
	minutes, err := strconv.Atoi(fields[1])
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("invalid duration: %s", fields[1]), IsError: true}
		return m
	}
	if m.Engine == nil {
		return m
	}
	brk, err := m.Engine.AddBreak(fields[0], minutes)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("break scheduled at %s", brk.Time), IsError: false}
	return m
}

func (m Model) removeSelectedBreak() Model {
	if m.Engine == nil {
		return m
	}
	breaks := m.Engine.Breaks()
	if len(breaks) == 0 || m.Schedule.Cursor >= len(breaks) {
		return m
	}
	target := breaks[m.Schedule.Cursor]
	if err := m.Engine.RemoveBreak(target.ID); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if m.Schedule.Cursor > 0 {
		m.Schedule.Cursor--
	}
	m.Status = StatusBar{Text: fmt.Sprintf("removed break at %s", target.Time), IsError: false}
	return m
}
