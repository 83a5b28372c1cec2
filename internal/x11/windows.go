package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// ClientList returns the managed top-level windows from _NET_CLIENT_LIST.
func (c *Connection) ClientList() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	return clients, nil
}

// WindowClass returns the class part of WM_CLASS.
func (c *Connection) WindowClass(windowID xproto.Window) (string, error) {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return "", err
	}
	return wmClass.Class, nil
}

// MoveResizeWindow moves and resizes a window to the specified geometry.
// It fails if the window no longer exists.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	// EWMH requests go to the root window and never report a dead client,
	// so probe the window first.
	if _, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply(); err != nil {
		return fmt.Errorf("window is gone: %w", err)
	}

	// Maximized windows ignore geometry requests on most WMs.
	_ = c.unmaximizeWindow(windowID)

	err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height)
	if err != nil {
		// Fallback to direct window manipulation
		win := xwindow.New(c.XUtil, windowID)
		win.MoveResize(x, y, width, height)
	}

	// Expose the new area; the server answers BadWindow if the client closed meanwhile.
	return redrawError(xproto.ClearAreaChecked(c.XUtil.Conn(), true, windowID, 0, 0, 0, 0).Check())
}

// redrawError drops BadMatch from a ClearArea reply: InputOnly clients answer
// it even though the move went through. BadWindow and anything else fail.
func redrawError(err error) error {
	var badMatch xproto.MatchError
	if errors.As(err, &badMatch) {
		return nil
	}
	return err
}
