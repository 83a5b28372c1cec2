package mover

import (
	"github.com/1broseidon/winmover/internal/config"
	"github.com/1broseidon/winmover/internal/platform"
)

// Status classifies a placement attempt.
type Status int

const (
	// StatusMoved means the move/resize succeeded. Activation may still
	// have failed; see Outcome.ActivateErr.
	StatusMoved Status = iota
	// StatusMoveFailed means the move/resize failed and activation was not
	// attempted.
	StatusMoveFailed
)

func (s Status) String() string {
	switch s {
	case StatusMoved:
		return "moved"
	case StatusMoveFailed:
		return "move-failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of placing one window.
type Outcome struct {
	WindowID platform.WindowID
	Status   Status
	// Err is the move/resize failure for StatusMoveFailed.
	Err error
	// ActivateErr is a non-fatal foreground activation failure.
	ActivateErr error
}

// Bounds converts edge coordinates to origin and size.
func Bounds(r config.Rect) platform.Rect {
	return platform.Rect{
		X:      r.Left,
		Y:      r.Top,
		Width:  r.Width(),
		Height: r.Height(),
	}
}

// Enforce moves and resizes one window, then asks for it to be brought to the
// foreground. Activation failures are warnings and never change a Moved
// status.
func (m *Mover) Enforce(windowID platform.WindowID, rect config.Rect) Outcome {
	out := Outcome{WindowID: windowID}

	if err := m.backend.MoveResize(windowID, Bounds(rect)); err != nil {
		m.logger.Warn("move failed", "window", windowID.String(), "op", opName(err), "err", err)
		out.Status = StatusMoveFailed
		out.Err = err
		return out
	}
	out.Status = StatusMoved
	if m.OnMoved != nil {
		m.OnMoved(windowID)
	}

	if err := m.backend.Activate(windowID); err != nil {
		m.logger.Warn("activation failed", "window", windowID.String(), "op", opName(err), "err", err)
		out.ActivateErr = err
	}
	return out
}
