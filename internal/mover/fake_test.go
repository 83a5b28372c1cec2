package mover

import (
	"errors"

	"github.com/1broseidon/winmover/internal/platform"
)

var errGone = errors.New("invalid window handle")

type fakeWindow struct {
	id          platform.WindowID
	class       string
	classErr    error
	moveErr     error
	activateErr error
}

// fakeBackend is an in-memory window session that records every request.
type fakeBackend struct {
	windows []fakeWindow
	enumErr error

	visited   []platform.WindowID
	moves     map[platform.WindowID]platform.Rect
	moveOrder []platform.WindowID
	activated []platform.WindowID
}

var _ platform.Backend = (*fakeBackend)(nil)

func newFakeBackend(windows ...fakeWindow) *fakeBackend {
	return &fakeBackend{
		windows: windows,
		moves:   make(map[platform.WindowID]platform.Rect),
	}
}

func (f *fakeBackend) lookup(windowID platform.WindowID) (fakeWindow, bool) {
	for _, w := range f.windows {
		if w.id == windowID {
			return w, true
		}
	}
	return fakeWindow{}, false
}

func (f *fakeBackend) EachWindow(visit func(platform.WindowID)) error {
	if f.enumErr != nil {
		return f.enumErr
	}
	for _, w := range f.windows {
		f.visited = append(f.visited, w.id)
		visit(w.id)
	}
	return nil
}

func (f *fakeBackend) WindowClass(windowID platform.WindowID) (string, error) {
	w, ok := f.lookup(windowID)
	if !ok {
		return "", errGone
	}
	if w.classErr != nil {
		return "", w.classErr
	}
	return platform.TruncateClassName(w.class), nil
}

func (f *fakeBackend) MoveResize(windowID platform.WindowID, bounds platform.Rect) error {
	f.moveOrder = append(f.moveOrder, windowID)
	w, ok := f.lookup(windowID)
	if !ok {
		return &platform.OpError{Op: "MoveWindow", WindowID: windowID, Err: errGone}
	}
	if w.moveErr != nil {
		return &platform.OpError{Op: "MoveWindow", WindowID: windowID, Err: w.moveErr}
	}
	f.moves[windowID] = bounds
	return nil
}

func (f *fakeBackend) Activate(windowID platform.WindowID) error {
	f.activated = append(f.activated, windowID)
	w, ok := f.lookup(windowID)
	if !ok {
		return errGone
	}
	if w.activateErr != nil {
		return &platform.OpError{Op: "SetForegroundWindow", WindowID: windowID, Err: w.activateErr}
	}
	return nil
}

func (f *fakeBackend) Disconnect() {}
