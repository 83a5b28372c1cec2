//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procMoveWindow          = user32.NewProc("MoveWindow")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
)

// WindowsBackend places windows on the interactive desktop through user32.
type WindowsBackend struct {
	enumProc uintptr
	visit    func(WindowID)
}

var _ Backend = (*WindowsBackend)(nil)

// Open prepares a backend for the current desktop. The enumeration callback
// is allocated once because Windows callbacks are never released.
func Open() (Backend, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("failed to load user32.dll: %w", err)
	}
	b := &WindowsBackend{}
	b.enumProc = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		if b.visit != nil {
			b.visit(WindowID(hwnd))
		}
		return 1 // continue
	})
	return b, nil
}

// Disconnect is a no-op; user32 holds no per-process session.
func (b *WindowsBackend) Disconnect() {}

// EachWindow visits every top-level window via EnumWindows.
func (b *WindowsBackend) EachWindow(visit func(WindowID)) error {
	b.visit = visit
	defer func() { b.visit = nil }()

	if err := windows.EnumWindows(b.enumProc, nil); err != nil {
		return &OpError{Op: "EnumWindows", Err: err}
	}
	return nil
}

// WindowClass returns the registered class name of a window.
func (b *WindowsBackend) WindowClass(windowID WindowID) (string, error) {
	buf := make([]uint16, MaxClassNameLen+1)
	n, err := windows.GetClassName(windows.HWND(windowID), &buf[0], int32(len(buf)))
	if err != nil {
		return "", &OpError{Op: "GetClassNameW", WindowID: windowID, Err: err}
	}
	return TruncateClassName(windows.UTF16ToString(buf[:n])), nil
}

// MoveResize calls MoveWindow with repaint enabled.
func (b *WindowsBackend) MoveResize(windowID WindowID, bounds Rect) error {
	r1, _, err := procMoveWindow.Call(
		uintptr(windowID),
		uintptr(bounds.X),
		uintptr(bounds.Y),
		uintptr(bounds.Width),
		uintptr(bounds.Height),
		1, // bRepaint
	)
	if r1 == 0 {
		if err == windows.ERROR_SUCCESS {
			err = windows.ERROR_INVALID_WINDOW_HANDLE
		}
		return &OpError{Op: "MoveWindow", WindowID: windowID, Err: err}
	}
	return nil
}

// Activate calls SetForegroundWindow. Windows may refuse when the caller is
// not the foreground process.
func (b *WindowsBackend) Activate(windowID WindowID) error {
	r1, _, err := procSetForegroundWindow.Call(uintptr(windowID))
	if r1 == 0 {
		if err == windows.ERROR_SUCCESS {
			err = fmt.Errorf("foreground change refused")
		}
		return &OpError{Op: "SetForegroundWindow", WindowID: windowID, Err: err}
	}
	return nil
}
