package platform

import "errors"

// ErrUnsupported is returned by backends on platforms without a window system
// implementation.
var ErrUnsupported = errors.New("window management is not supported on this platform")

// WindowID is a platform-neutral window identifier. It is a value resolved by
// the host session; holding one does not keep the window alive.
type WindowID uint64

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Backend abstracts the window-system operations needed to place top-level
// windows.
type Backend interface {
	// EachWindow calls visit once for every current top-level window, in the
	// order the host reports them. It returns an error only when the listing
	// itself cannot be obtained, in which case visit is never called.
	EachWindow(visit func(WindowID)) error
	// WindowClass returns the class name of a window. Names longer than
	// MaxClassNameLen are truncated.
	WindowClass(windowID WindowID) (string, error)
	// MoveResize moves and resizes a window and requests a redraw.
	MoveResize(windowID WindowID, bounds Rect) error
	// Activate asks the host to bring a window to the foreground.
	Activate(windowID WindowID) error
	// Disconnect releases the session connection.
	Disconnect()
}

// MaxClassNameLen bounds the number of bytes read for a window class name.
const MaxClassNameLen = 4096

// TruncateClassName cuts name to at most MaxClassNameLen bytes without
// splitting a UTF-8 sequence.
func TruncateClassName(name string) string {
	if len(name) <= MaxClassNameLen {
		return name
	}
	cut := MaxClassNameLen
	for cut > 0 && !isRuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// OpError records which host primitive failed for a window.
type OpError struct {
	Op       string
	WindowID WindowID
	Err      error
}

func (e *OpError) Error() string {
	return e.Op + " failed for window " + e.WindowID.String() + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
