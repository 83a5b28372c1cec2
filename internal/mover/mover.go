// Package mover finds the top-level windows of one class and places each of
// them on a fixed rectangle.
package mover

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/1broseidon/winmover/internal/config"
	"github.com/1broseidon/winmover/internal/platform"
)

// Target is the class to look for and where its windows go. It is built once
// per run and never modified.
type Target struct {
	Class string
	Rect  config.Rect
}

// TargetFromConfig builds the run target from resolved configuration.
func TargetFromConfig(cfg *config.Config) Target {
	return Target{Class: cfg.Window.Class, Rect: cfg.Rect}
}

// EnumerationError means the host refused to list windows. No window was
// visited.
type EnumerationError struct {
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("window enumeration could not start: %v", e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// RunResult summarizes one pass.
type RunResult struct {
	// Matched counts every window on which placement was attempted, whether
	// or not the move succeeded.
	Matched              uint
	EnumerationSucceeded bool
	// Outcomes holds one entry per matched window in visit order.
	Outcomes []Outcome
}

// Moved returns how many matched windows were actually placed.
func (r RunResult) Moved() uint {
	var n uint
	for _, o := range r.Outcomes {
		if o.Status == StatusMoved {
			n++
		}
	}
	return n
}

// Mover drives one enumeration pass against a backend.
type Mover struct {
	backend platform.Backend
	logger  *slog.Logger

	// OnMoved, if set, is called as soon as a window has been moved and
	// before its activation is requested.
	OnMoved func(platform.WindowID)
}

// New returns a Mover. A nil logger discards diagnostics.
func New(backend platform.Backend, logger *slog.Logger) *Mover {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Mover{backend: backend, logger: logger}
}

// Run visits every top-level window once, placing each one whose class equals
// target.Class. Per-window failures are logged and never stop the pass; only
// a failure to start enumeration is returned, as *EnumerationError.
func (m *Mover) Run(target Target) (RunResult, error) {
	res := RunResult{}

	if target.Rect.Degenerate() {
		m.logger.Warn("target rectangle has no area",
			"left", target.Rect.Left, "top", target.Rect.Top,
			"right", target.Rect.Right, "bottom", target.Rect.Bottom)
	}

	err := m.backend.EachWindow(func(windowID platform.WindowID) {
		if !m.Matches(windowID, target.Class) {
			return
		}
		outcome := m.Enforce(windowID, target.Rect)
		res.Outcomes = append(res.Outcomes, outcome)
		res.Matched++
	})
	if err != nil {
		return RunResult{}, &EnumerationError{Err: err}
	}

	res.EnumerationSucceeded = true
	m.logger.Debug("pass complete", "class", target.Class, "matched", res.Matched, "moved", res.Moved())
	return res, nil
}

// opName extracts the failing host primitive, if the backend reported one.
func opName(err error) string {
	var opErr *platform.OpError
	if errors.As(err, &opErr) {
		return opErr.Op
	}
	return ""
}
