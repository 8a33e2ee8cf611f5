package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Break    func(BreakArgs) (Result, error)
	Meeting  func(MeetingArgs) (Result, error)
	Interval func(IntervalArgs) (Result, error)
	Show     func(ShowArgs) (Result, error)
	Reset    func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeBreak:
		if handlers.Break == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "break handler not configured"}
		}
		return handlers.Break(*cmd.Break)
	case TypeMeeting:
		if handlers.Meeting == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "meeting handler not configured"}
		}
		return handlers.Meeting(*cmd.Meeting)
	case TypeInterval:
		if handlers.Interval == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "interval handler not configured"}
		}
		return handlers.Interval(*cmd.Interval)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
