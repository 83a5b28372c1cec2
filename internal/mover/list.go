package mover

import "github.com/1broseidon/winmover/internal/platform"

// WindowInfo describes a top-level window for discovery output.
type WindowInfo struct {
	WindowID platform.WindowID
	Class    string
	// ClassErr is set when the class name could not be read.
	ClassErr error
}

// List enumerates top-level windows without touching them.
func (m *Mover) List() ([]WindowInfo, error) {
	var windows []WindowInfo
	err := m.backend.EachWindow(func(windowID platform.WindowID) {
		class, err := m.backend.WindowClass(windowID)
		windows = append(windows, WindowInfo{WindowID: windowID, Class: class, ClassErr: err})
	})
	if err != nil {
		return nil, &EnumerationError{Err: err}
	}
	return windows, nil
}
