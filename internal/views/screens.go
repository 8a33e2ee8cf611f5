package views

import (
	"fmt"
	"sort"
	"strings"
)

type ActivityCardData struct {
	ID       string
	Category string
	Title    string
	Duration string
	Weight   float64
	Selected bool
}

type DashboardPanelData struct {
	WorkTimer   string
	WorkRunning bool
	BreaksToday int
	Cards       []ActivityCardData
}

type ScheduleItemData struct {
	ID              string
	Display         string
	DurationMinutes int
	Selected        bool
}

type SchedulePanelData struct {
	InputMode bool
	InputView string
	Items     []ScheduleItemData
}

type AgendaItemData struct {
	ID       string
	Title    string
	Date     string
	Start    string
	End      string
	Selected bool
}

type CalendarPanelData struct {
	InputMode        bool
	InputView        string
	TableView        string
	Items            []AgendaItemData
	CompletedMinutes int
}

type ActivityPanelData struct {
	Title        string
	Category     string
	Description  string
	Video        string
	State        string
	Timer        string
	ProgressView string
	Paused       bool
}

type PromptModalData struct {
	Title         string
	ActivityTitle string
	Duration      string
}

type HistoryEntryData struct {
	Title    string
	Category string
	Action   string
	When     string
}

type HistoryPanelData struct {
	Entries []HistoryEntryData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	state := "paused"
	if data.WorkRunning {
		state = "running"
	}
	b.WriteString(fmt.Sprintf("worked: %s (%s) | breaks today: %d\n", data.WorkTimer, state, data.BreaksToday))
	b.WriteString("actions: [j/k]move [enter]start [2]schedule [3]calendar\n")

	grouped := make(map[string][]ActivityCardData)
	order := make([]string, 0)
	for _, card := range data.Cards {
		if _, ok := grouped[card.Category]; !ok {
			order = append(order, card.Category)
		}
		grouped[card.Category] = append(grouped[card.Category], card)
	}
	if len(order) == 0 {
		b.WriteString("(activity catalog empty)")
		return strings.TrimSpace(b.String())
	}

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s (weight %.2f):\n", category, grouped[category][0].Weight))
		for _, card := range grouped[category] {
			cursor := " "
			if card.Selected {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s [%s]\n", cursor, card.Title, card.Duration))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderSchedulePanel(data SchedulePanelData) string {
	var b strings.Builder
	b.WriteString("scheduled breaks:\n")
	b.WriteString("actions: [a]add [j/k]move [x]remove\n")
	if data.InputMode {
		b.WriteString("add: " + data.InputView + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no breaks scheduled)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if item.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s for %d min (id %s)\n", cursor, item.Display, item.DurationMinutes, item.ID))
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString(fmt.Sprintf("meetings completed today: %dh %dm\n", data.CompletedMinutes/60, data.CompletedMinutes%60))
	b.WriteString("actions: [a]add [j/k]move [x]remove\n")
	if data.InputMode {
		b.WriteString("add: " + data.InputView + "\n")
	}
	if data.TableView != "" {
		b.WriteString(data.TableView + "\n")
	}

	grouped := make(map[string][]AgendaItemData)
	days := make([]string, 0)
	for _, item := range data.Items {
		if _, ok := grouped[item.Date]; !ok {
			days = append(days, item.Date)
		}
		grouped[item.Date] = append(grouped[item.Date], item)
	}
	sort.Strings(days)
	if len(days) == 0 {
		b.WriteString("(agenda empty)")
		return strings.TrimSpace(b.String())
	}

	for _, day := range days {
		b.WriteString(fmt.Sprintf("\n%s:\n", day))
		for _, item := range grouped[day] {
			cursor := " "
			if item.Selected {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s - %s %s\n", cursor, item.Start, item.End, item.Title))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderActivityPanel(data ActivityPanelData) string {
	var b strings.Builder
	b.WriteString("activity:\n")
	b.WriteString(fmt.Sprintf("%s [%s]\n", data.Title, data.Category))
	b.WriteString(fmt.Sprintf("state: %s\n", strings.ToUpper(data.State)))
	b.WriteString(fmt.Sprintf("remaining: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s\n", data.ProgressView))
	if data.Description != "" {
		b.WriteString(data.Description + "\n")
	}
	if data.Video != "" {
		b.WriteString(fmt.Sprintf("video: %s\n", data.Video))
	} else {
		b.WriteString("no video, follow the on-screen instructions\n")
	}
	b.WriteString("actions: [space]pause/resume [f]finish [s]skip [esc]abandon")
	if data.Paused {
		b.WriteString("\n(paused)")
	}
	return strings.TrimSpace(b.String())
}

func RenderPromptModal(data PromptModalData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", data.Title))
	if data.ActivityTitle != "" {
		b.WriteString(fmt.Sprintf("suggestion: %s [%s]\n", data.ActivityTitle, data.Duration))
	}
	b.WriteString("[s]tart [l]ater [x]skip [esc]dismiss\n")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHistoryPanel(data HistoryPanelData) string {
	if len(data.Entries) == 0 {
		return "history:\n(no breaks recorded)"
	}
	var b strings.Builder
	b.WriteString("history:\n")
	for _, entry := range data.Entries {
		b.WriteString(fmt.Sprintf("- %s %s [%s] %s\n", entry.When, entry.Title, entry.Category, entry.Action))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("\nhelp:\n%s view:\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
	)
}
