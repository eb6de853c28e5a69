// Package errors reports command failures on the console.
package errors

import (
	stderrors "errors"
	"sync"

	"github.com/volfade/volfade/internal/cache"
	"github.com/volfade/volfade/internal/fader"
	"github.com/volfade/volfade/internal/sink"
)

// ErrorHandler is the interface for error handling.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// CLIHandler handles errors by printing to stdout/stderr using the colors package.
type CLIHandler struct {
	colors     ColorOutput
	mu         sync.Mutex
	inHandling bool
}

type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	if h.inHandling {
		h.mu.Unlock()
		h.colors.Error(msg)
		return
	}
	h.inHandling = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inHandling = false
		h.mu.Unlock()
	}()

	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}

// Report prints err and, for known failures, a hint on how to fix it.
func Report(h ErrorHandler, err error) {
	if err == nil {
		return
	}
	h.Error(err.Error())
	if hint := Hint(err); hint != "" {
		h.Info(hint)
	}
}

// Hint returns a remedy for err, or "" when there is nothing to suggest.
func Hint(err error) string {
	switch {
	case stderrors.Is(err, sink.ErrServerUnavailable):
		return "Is PulseAudio or pipewire-pulse running? Check with: pactl info"
	case stderrors.Is(err, sink.ErrNoDefaultSink):
		return "Select an output with: pactl set-default-sink <name>"
	case stderrors.Is(err, cache.ErrNoHome):
		return "Set HOME or XDG_CACHE_HOME, or configure cache_dir"
	case stderrors.Is(err, fader.ErrInvalidStep):
		return "Percentages and step counts must be greater than zero"
	default:
		return ""
	}
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
