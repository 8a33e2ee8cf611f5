package update

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/session"
	"github.com/sandeepkv93/breakd/internal/views"
)

const historyDisplayLimit = 10

func (m Model) renderDashboardView() string {
	cards := make([]views.ActivityCardData, 0, len(m.Catalog))
	for i, activity := range m.Catalog {
		weight := 0.0
		if m.Prefs != nil {
			weight = m.Prefs.Weight(activity.Category)
		}
		cards = append(cards, views.ActivityCardData{
			ID:       activity.ID,
			Category: string(activity.Category),
			Title:    activity.Title,
			Duration: model.FormatCountdown(activity.DurationSeconds),
			Weight:   weight,
			Selected: i == m.Dashboard.Cursor,
		})
	}

	data := views.DashboardPanelData{Cards: cards}
	if m.Engine != nil {
		data.WorkTimer = model.FormatSeconds(m.Engine.WorkSeconds())
		data.WorkRunning = m.Engine.WorkRunning()
	}
	if m.History != nil {
		data.BreaksToday = m.History.CompletedToday(m.now())
	}
	return views.RenderDashboardPanel(data)
}

func (m Model) renderScheduleView() string {
	data := views.SchedulePanelData{InputMode: m.Schedule.InputMode}
	if m.Schedule.InputMode {
		data.InputView = m.scheduleInput.View()
	}
	if m.Engine != nil {
		for i, brk := range m.Engine.Breaks() {
			data.Items = append(data.Items, views.ScheduleItemData{
				ID:              brk.ID,
				Display:         model.Format12Hour(brk.Time),
				DurationMinutes: brk.DurationMinutes,
				Selected:        i == m.Schedule.Cursor,
			})
		}
	}
	return views.RenderSchedulePanel(data)
}

func (m Model) renderCalendarView() string {
	data := views.CalendarPanelData{InputMode: m.Calendar.InputMode}
	if m.Calendar.InputMode {
		data.InputView = m.meetingInput.View()
	}
	if m.Engine != nil {
		meetings := m.Engine.Meetings()
		rows := make([]table.Row, 0, len(meetings))
		for i, meeting := range meetings {
			data.Items = append(data.Items, views.AgendaItemData{
				ID:       meeting.ID,
				Title:    meeting.Title,
				Date:     meeting.Date,
				Start:    model.Format12Hour(meeting.StartTime),
				End:      model.Format12Hour(meeting.EndTime),
				Selected: i == m.Calendar.Cursor,
			})
			rows = append(rows, table.Row{meeting.Date, meeting.StartTime, meeting.EndTime, meeting.Title})
		}
		if len(rows) > 0 {
			tbl := m.calendarTable
			tbl.SetRows(rows)
			data.TableView = tbl.View()
		}
		data.CompletedMinutes = m.Engine.MeetingMinutesCompleted(m.now())
	}
	return views.RenderCalendarPanel(data)
}

func (m Model) renderActivityView() string {
	if m.Session == nil {
		return "activity:\n(no session running)\nstart one from the dashboard or the break prompt"
	}
	activity := m.Session.Activity()
	total := activity.DurationSeconds
	done := 0.0
	if total > 0 {
		done = float64(total-m.Session.Remaining()) / float64(total)
	}
	return views.RenderActivityPanel(views.ActivityPanelData{
		Title:        activity.Title,
		Category:     string(activity.Category),
		Description:  views.RenderMarkdown(activity.Description),
		Video:        activity.VideoRef,
		State:        string(m.Session.State()),
		Timer:        model.FormatCountdown(m.Session.Remaining()),
		ProgressView: m.sessionProgress.ViewAs(done),
		Paused:       m.Session.State() == session.StatePaused,
	})
}

func (m Model) renderPromptModal() string {
	data := views.PromptModalData{Title: "Time for a microbreak"}
	if m.Prompt.Activity != nil {
		data.ActivityTitle = m.Prompt.Activity.Title
		data.Duration = model.FormatCountdown(m.Prompt.Activity.DurationSeconds)
	}
	return views.RenderPromptModal(data)
}

func (m Model) renderHistoryPane() string {
	if m.History == nil {
		return ""
	}
	entries := m.History.Entries()
	if len(entries) > historyDisplayLimit {
		entries = entries[:historyDisplayLimit]
	}
	items := make([]views.HistoryEntryData, 0, len(entries))
	for _, entry := range entries {
		items = append(items, views.HistoryEntryData{
			Title:    entry.Title,
			Category: string(entry.Category),
			Action:   string(entry.Action),
			When:     time.UnixMilli(entry.Timestamp).Format("15:04"),
		})
	}
	return views.RenderHistoryPanel(views.HistoryPanelData{Entries: items})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    m.currentViewBindings(),
	})
}

func (m Model) currentViewBindings() []string {
	switch m.CurrentView {
	case ViewSchedule:
		return []string{"[a] add break", "[j/k] move", "[x] remove"}
	case ViewCalendar:
		return []string{"[a] add meeting", "[j/k] move", "[x] remove"}
	case ViewActivity:
		return []string{"[space] pause/resume", "[f] finish", "[s] skip", "[esc] abandon"}
	default:
		return []string{"[j/k] move", "[enter] start activity", "[s] start/pause work"}
	}
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
