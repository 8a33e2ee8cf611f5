package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/breakd/internal/engine"
	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/session"
	"github.com/sandeepkv93/breakd/internal/store"
	"github.com/sandeepkv93/breakd/internal/suggest"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewSchedule  View = "Schedule"
	ViewCalendar  View = "Calendar"
	ViewActivity  View = "Activity"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Schedule  string
	Calendar  string
	Activity  string
	Help      string
	Quit      string
}

// PromptState is the break-prompt modal raised by a work-threshold event.
type PromptState struct {
	Active   bool
	Activity *model.Activity
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type DashboardState struct {
	Cursor int
}

type ScheduleState struct {
	Cursor    int
	InputMode bool
}

type CalendarState struct {
	Cursor    int
	InputMode bool
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type EngineEventMsg struct {
	Event engine.Event
}

// SessionTickMsg advances the activity countdown. Seq ties the message to the
// tick chain that scheduled it; stale chains from before a pause or resume are
// discarded so the countdown never runs double speed.
type SessionTickMsg struct {
	Seq int
}

type Model struct {
	CurrentView    View
	Catalog        []model.Activity
	Engine         *engine.Engine
	History        *suggest.History
	Prefs          *suggest.Preferences
	Session        *session.Session
	Prompt         PromptState
	Palette        CommandPaletteState
	Dashboard      DashboardState
	Schedule       ScheduleState
	Calendar       CalendarState
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	Width          int
	now            func() time.Time
	sessionTickSeq int
	// Bubble components used for rich TUI controls
	commandInput    textinput.Model
	scheduleInput   textinput.Model
	meetingInput    textinput.Model
	sessionProgress progress.Model
	calendarTable   table.Model
}

// NewModel builds a self-contained model on an in-memory store with the
// embedded catalog. The daemon entrypoint uses NewModelWithConfig instead.
func NewModel() Model {
	catalog, err := model.DefaultCatalog()
	if err != nil {
		catalog = nil
	}
	conn := store.NewHub(store.NewMemoryBackend()).Conn()
	return NewModelWithConfig(conn, catalog, NoopDesktopNotifier{}, DefaultRuntimeConfig())
}

func NewModelWithConfig(conn *store.Conn, catalog []model.Activity, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	eng := engine.New(conn, catalog, engine.Config{
		ThresholdSeconds:    cfg.WorkIntervalMinutes * 60,
		PostponeLeadSeconds: cfg.PostponeMinutes * 60,
		Buffer:              cfg.EngineBuffer,
	})

	m := Model{
		CurrentView:    ViewDashboard,
		Catalog:        catalog,
		Engine:         eng,
		History:        suggest.NewHistory(conn, cfg.HistoryCap),
		Prefs:          suggest.NewPreferences(conn),
		DesktopEnabled: cfg.DesktopNotifications,
		notifier:       NoopDesktopNotifier{},
		now:            time.Now,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Schedule:  "2",
			Calendar:  "3",
			Activity:  "4",
			Help:      "?",
			Quit:      "q",
		},
	}
	if notifier != nil {
		m.notifier = notifier
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	cmd := textinput.New()
	cmd.Placeholder = "break add 09:30 5"
	cmd.CharLimit = 120
	m.commandInput = cmd

	sched := textinput.New()
	sched.Placeholder = "HH:MM minutes"
	sched.CharLimit = 16
	m.scheduleInput = sched

	meet := textinput.New()
	meet.Placeholder = "title, YYYY-MM-DD, HH:MM, HH:MM"
	meet.CharLimit = 120
	m.meetingInput = meet

	m.sessionProgress = progress.New(progress.WithDefaultGradient())

	m.calendarTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Start", Width: 8},
			{Title: "End", Width: 8},
			{Title: "Title", Width: 24},
		}),
		table.WithHeight(6),
	)
}
