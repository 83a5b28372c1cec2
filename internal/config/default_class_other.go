//go:build !windows

package config

// DefaultWindowClass is the WM_CLASS class of the GNOME file browser.
const DefaultWindowClass = "org.gnome.Nautilus"
