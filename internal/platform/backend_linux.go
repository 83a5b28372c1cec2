//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/winmover/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend places windows on an X11 session through EWMH.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// Open connects to the session named by $DISPLAY.
func Open() (Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// EachWindow visits every window in _NET_CLIENT_LIST.
func (b *LinuxBackend) EachWindow(visit func(WindowID)) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	clients, err := conn.ClientList()
	if err != nil {
		return &OpError{Op: "_NET_CLIENT_LIST", Err: err}
	}
	for _, windowID := range clients {
		visit(WindowID(windowID))
	}
	return nil
}

// WindowClass returns the WM_CLASS class name of a window.
func (b *LinuxBackend) WindowClass(windowID WindowID) (string, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}

	class, err := conn.WindowClass(xproto.Window(windowID))
	if err != nil {
		return "", &OpError{Op: "WM_CLASS", WindowID: windowID, Err: err}
	}
	return TruncateClassName(class), nil
}

// MoveResize moves and resizes a window to the specified bounds.
func (b *LinuxBackend) MoveResize(windowID WindowID, bounds Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	err = conn.MoveResizeWindow(
		xproto.Window(windowID),
		bounds.X,
		bounds.Y,
		bounds.Width,
		bounds.Height,
	)
	if err != nil {
		return &OpError{Op: "_NET_MOVERESIZE_WINDOW", WindowID: windowID, Err: err}
	}
	return nil
}

// Activate requests focus through _NET_ACTIVE_WINDOW.
func (b *LinuxBackend) Activate(windowID WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	if err := conn.FocusWindow(xproto.Window(windowID)); err != nil {
		return &OpError{Op: "_NET_ACTIVE_WINDOW", WindowID: windowID, Err: err}
	}
	return nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
