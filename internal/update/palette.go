package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/breakd/internal/commands"
	"github.com/sandeepkv93/breakd/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Break: func(a commands.BreakArgs) (commands.Result, error) {
			if a.Action == commands.ActionRemove {
				if err := m.Engine.RemoveBreak(a.ID); err != nil {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
				}
				return commands.Result{Message: fmt.Sprintf("removed break %s", a.ID)}, nil
			}
			brk, err := m.Engine.AddBreak(a.Time, a.DurationMinutes)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("break scheduled at %s for %d min", brk.Time, brk.DurationMinutes)}, nil
		},
		Meeting: func(a commands.MeetingArgs) (commands.Result, error) {
			if a.Action == commands.ActionRemove {
				if err := m.Engine.RemoveMeeting(a.ID); err != nil {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
				}
				return commands.Result{Message: fmt.Sprintf("removed meeting %s", a.ID)}, nil
			}
			meeting, err := m.Engine.AddMeeting(a.Title, a.Date, a.StartTime, a.EndTime)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("meeting added: %s on %s", meeting.Title, meeting.Date)}, nil
		},
		Interval: func(a commands.IntervalArgs) (commands.Result, error) {
			m.Engine.SetWorkThreshold(a.Minutes * 60)
			return commands.Result{Message: fmt.Sprintf("work interval set to %d min", a.Minutes)}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			switch a.Subject {
			case "history":
				return commands.Result{Message: fmt.Sprintf("history: %d entries, %d today", len(m.History.Entries()), m.History.CompletedToday(m.now()))}, nil
			case "prefs":
				return commands.Result{Message: m.describePreferences()}, nil
			}
			return commands.Result{Message: fmt.Sprintf("show %s", a.Subject)}, nil
		},
		Reset: func() (commands.Result, error) {
			if err := m.History.Reset(); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			if err := m.Prefs.Reset(); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.Engine.ResetWorkTimer()
			return commands.Result{Message: "history and preferences reset"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) describePreferences() string {
	parts := make([]string, 0, len(model.Categories()))
	for _, cat := range model.Categories() {
		parts = append(parts, fmt.Sprintf("%s=%.2f", cat, m.Prefs.Weight(cat)))
	}
	return "prefs: " + strings.Join(parts, " ")
}
