package store

// Persisted keys. Each key has exactly one writing component; reads from
// other components are permitted but never mutate.
const (
	// KeyWorkSeconds holds the WorkTimer's integer second counter.
	KeyWorkSeconds = "work_seconds"
	// KeyScheduledBreaks holds the ordered scheduled-break list.
	KeyScheduledBreaks = "scheduled_breaks"
	// KeyMeetings holds the calendar meeting list.
	KeyMeetings = "calendar_meetings"
	// KeyFiredBreaks holds the date-keyed set of break ids already notified.
	KeyFiredBreaks = "notified_breaks"
	// KeyMeetingHours holds the date-keyed meeting-hour notification ceiling.
	KeyMeetingHours = "meeting_hours_notified"
	// KeyHistory holds the bounded completion history, newest first.
	KeyHistory = "completion_history"
	// KeyPreferences holds the category weight map.
	KeyPreferences = "category_preferences"
)
