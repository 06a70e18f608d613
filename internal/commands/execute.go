package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Time       func(TimeArgs) (Result, error)
	Style      func(StyleArgs) (Result, error)
	Intensity  func(IntensityArgs) (Result, error)
	Add        func(AddArgs) (Result, error)
	Theme      func(ThemeArgs) (Result, error)
	Fullscreen func() (Result, error)
	Skip       func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeTime:
		if handlers.Time == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Time(*cmd.Time)
	case TypeStyle:
		if handlers.Style == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Style(*cmd.Style)
	case TypeIntensity:
		if handlers.Intensity == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Intensity(*cmd.Intensity)
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Theme(*cmd.Theme)
	case TypeFullscreen:
		if handlers.Fullscreen == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Fullscreen()
	case TypeSkip:
		if handlers.Skip == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Skip()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
