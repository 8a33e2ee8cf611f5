package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeBreak    Type = "break"
	TypeMeeting  Type = "meeting"
	TypeInterval Type = "interval"
	TypeShow     Type = "show"
	TypeReset    Type = "reset"
)

// Interval bounds, in minutes.
const (
	MinIntervalMinutes = 15
	MaxIntervalMinutes = 180
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	ActionAdd    = "add"
	ActionRemove = "rm"
)

type BreakArgs struct {
	Action          string
	Time            string
	DurationMinutes int
	ID              string
}

type MeetingArgs struct {
	Action    string
	Title     string
	Date      string
	StartTime string
	EndTime   string
	ID        string
}

type IntervalArgs struct {
	Minutes int
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type     Type
	Raw      string
	Break    *BreakArgs
	Meeting  *MeetingArgs
	Interval *IntervalArgs
	Show     *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeBreak:
		return parseBreak(input, args)
	case TypeMeeting:
		return parseMeeting(input, args)
	case TypeInterval:
		return parseInterval(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeReset:
		return Command{Type: TypeReset, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseBreak(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "break requires add or rm"}
	}
	switch strings.ToLower(args[0]) {
	case ActionAdd:
		if len(args) < 3 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "usage: break add HH:MM minutes"}
		}
		minutes, err := strconv.Atoi(args[2])
		if err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid duration: %s", args[2])}
		}
		return Command{Type: TypeBreak, Raw: raw, Break: &BreakArgs{Action: ActionAdd, Time: args[1], DurationMinutes: minutes}}, nil
	case ActionRemove:
		if len(args) < 2 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "usage: break rm <id>"}
		}
		return Command{Type: TypeBreak, Raw: raw, Break: &BreakArgs{Action: ActionRemove, ID: args[1]}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported break action: %s", args[0])}
	}
}

// parseMeeting handles "meeting add Title, YYYY-MM-DD, HH:MM, HH:MM" and
// "meeting rm <id>". The add form is comma separated so the title can carry
// spaces.
func parseMeeting(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "meeting requires add or rm"}
	}
	switch strings.ToLower(args[0]) {
	case ActionAdd:
		rest := strings.TrimSpace(strings.Join(args[1:], " "))
		fields := strings.Split(rest, ",")
		if len(fields) != 4 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "usage: meeting add title, date, start, end"}
		}
		meeting := &MeetingArgs{
			Action:    ActionAdd,
			Title:     strings.TrimSpace(fields[0]),
			Date:      strings.TrimSpace(fields[1]),
			StartTime: strings.TrimSpace(fields[2]),
			EndTime:   strings.TrimSpace(fields[3]),
		}
		if meeting.Title == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "meeting title is empty"}
		}
		return Command{Type: TypeMeeting, Raw: raw, Meeting: meeting}, nil
	case ActionRemove:
		if len(args) < 2 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "usage: meeting rm <id>"}
		}
		return Command{Type: TypeMeeting, Raw: raw, Meeting: &MeetingArgs{Action: ActionRemove, ID: args[1]}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported meeting action: %s", args[0])}
	}
}

func parseInterval(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "interval requires minutes"}
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid minutes: %s", args[0])}
	}
	if minutes < MinIntervalMinutes || minutes > MaxIntervalMinutes {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("interval must be %d-%d minutes", MinIntervalMinutes, MaxIntervalMinutes)}
	}
	return Command{Type: TypeInterval, Raw: raw, Interval: &IntervalArgs{Minutes: minutes}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	if subject != "history" && subject != "prefs" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported show subject: %s", subject)}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
}
