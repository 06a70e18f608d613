package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/pomodesk/internal/display"
	"github.com/sandeepkv93/pomodesk/internal/timer"
)

type Type string

const (
	TypeTime       Type = "time"
	TypeStyle      Type = "style"
	TypeIntensity  Type = "intensity"
	TypeAdd        Type = "add"
	TypeTheme      Type = "theme"
	TypeFullscreen Type = "fullscreen"
	TypeSkip       Type = "skip"
)

// Names lists the palette commands in help order.
var Names = []Type{TypeTime, TypeStyle, TypeIntensity, TypeAdd, TypeTheme, TypeFullscreen, TypeSkip}

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

type TimeArgs struct {
	Minutes int
}

type StyleArgs struct {
	Style display.Style
}

type IntensityArgs struct {
	Intensity display.Intensity
}

type AddArgs struct {
	Title string
}

type ThemeArgs struct {
	Name string
}

type Command struct {
	Type      Type
	Raw       string
	Time      *TimeArgs
	Style     *StyleArgs
	Intensity *IntensityArgs
	Add       *AddArgs
	Theme     *ThemeArgs
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
	case TypeTime:
		return parseTime(input, args)
	case TypeStyle:
		return parseStyle(input, args)
	case TypeIntensity:
		return parseIntensity(input, args)
	case TypeAdd:
		return parseAdd(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeFullscreen, TypeSkip:
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseTime(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "time requires minutes"}
	}
	minutes, err := ParseMinutes(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeTime, Raw: raw, Time: &TimeArgs{Minutes: minutes}}, nil
}

// ParseMinutes accepts a whole number of minutes up to a day, optionally
// suffixed with "m".
func ParseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "m"))
	if err != nil || !timer.ValidMinutes(n) {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("minutes must be between 1 and %d, got %q", timer.MaxMinutes, s)}
	}
	return n, nil
}

func parseStyle(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "style requires circular or linear"}
	}
	st, err := display.ParseStyle(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeStyle, Raw: raw, Style: &StyleArgs{Style: st}}, nil
}

func parseIntensity(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "intensity requires normal, reduced or off"}
	}
	in, err := display.ParseIntensity(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeIntensity, Raw: raw, Intensity: &IntensityArgs{Intensity: in}}, nil
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires dark or light"}
	}
	name := strings.ToLower(args[0])
	if name != "dark" && name != "light" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme %q", args[0])}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: name}}, nil
}
