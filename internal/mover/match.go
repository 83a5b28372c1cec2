package mover

import "github.com/1broseidon/winmover/internal/platform"

// Matches reports whether the window's class name is exactly class. A window
// whose class cannot be read does not match.
func (m *Mover) Matches(windowID platform.WindowID, class string) bool {
	name, err := m.backend.WindowClass(windowID)
	if err != nil {
		m.logger.Debug("class name unavailable", "window", windowID.String(), "err", err)
		return false
	}
	return ClassEqual(name, class)
}

// ClassEqual compares a retrieved class name with the target. The comparison
// is case-sensitive and covers the whole of both strings, so a retrieved name
// that is only a prefix of the target does not match.
func ClassEqual(retrieved, target string) bool {
	return retrieved == target
}
