package commands

import "fmt"

type Result struct {
	Message string
}

// Handlers binds each command type to the code that applies it.
type Handlers struct {
	Toggle   func(ToggleArgs) (Result, error)
	Day      func(DayArgs) (Result, error)
	Name     func(NameArgs) (Result, error)
	Today    func() (Result, error)
	Streak   func() (Result, error)
	Expand   func() (Result, error)
	Collapse func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeDay:
		if handlers.Day == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Day(*cmd.Day)
	case TypeName:
		if handlers.Name == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Name(*cmd.Name)
	case TypeToday:
		return simple(cmd.Type, handlers.Today)
	case TypeStreak:
		return simple(cmd.Type, handlers.Streak)
	case TypeExpand:
		return simple(cmd.Type, handlers.Expand)
	case TypeCollapse:
		return simple(cmd.Type, handlers.Collapse)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func simple(t Type, fn func() (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(t)
	}
	return fn()
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

// Rejected reports a well-formed command that the current state refused.
func Rejected(format string, args ...any) error {
	return &CommandError{Code: ErrCodeRejected, Message: fmt.Sprintf(format, args...)}
}
