//go:build windows

package config

// DefaultWindowClass is the class of Explorer folder windows.
const DefaultWindowClass = "CabinetWClass"
