package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Calendar.InputMode {
		switch msg.String() {
		case "esc":
			m.Calendar.InputMode = false
			m.meetingInput.SetValue("")
			m.meetingInput.Blur()
			m.Status = StatusBar{Text: "add meeting cancelled", IsError: false}
			return m, nil
		case "enter":
			return m.submitMeetingForm(), nil
		default:
			var cmd tea.Cmd
			m.meetingInput, cmd = m.meetingInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "a":
		m.Calendar.InputMode = true
		m.meetingInput.SetValue("")
		m.meetingInput.Focus()
		m.Status = StatusBar{Text: "add meeting: title, date, start, end", IsError: false}
		return m, nil
	case "up", "k":
		if m.Calendar.Cursor > 0 {
			m.Calendar.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Engine != nil && m.Calendar.Cursor < len(m.Engine.Meetings())-1 {
			m.Calendar.Cursor++
		}
		return m, nil
	case "x", "d":
		return m.removeSelectedMeeting(), nil
	}
	return m, nil
}

// submitMeetingForm parses the comma-separated quick-add form so the title
// can carry spaces: "Sprint review, 2026-08-31, 14:00, 15:00".
func (m Model) submitMeetingForm() Model {
	raw := strings.TrimSpace(m.meetingInput.Value())
	m.Calendar.InputMode = false
	m.meetingInput.SetValue("")
	m.meetingInput.Blur()

	fields := strings.Split(raw, ",")
	if len(fields) != 4 {
		m.Status = StatusBar{Text: "expected: title, date, start, end", IsError: true}
		return m
	}
	if m.Engine == nil {
		return m
	}
	meeting, err := m.Engine.AddMeeting(
		strings.TrimSpace(fields[0]),
		strings.TrimSpace(fields[1]),
		strings.TrimSpace(fields[2]),
		strings.TrimSpace(fields[3]),
	)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("meeting added: %s", meeting.Title), IsError: false}
	return m
}

func (m Model) removeSelectedMeeting() Model {
	if m.Engine == nil {
		return m
	}
	meetings := m.Engine.Meetings()
	if len(meetings) == 0 || m.Calendar.Cursor >= len(meetings) {
		return m
	}
	target := meetings[m.Calendar.Cursor]
	if err := m.Engine.RemoveMeeting(target.ID); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if m.Calendar.Cursor > 0 {
		m.Calendar.Cursor--
	}
	m.Status = StatusBar{Text: fmt.Sprintf("removed meeting: %s", target.Title), IsError: false}
	return m
}
