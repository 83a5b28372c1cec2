package config

import (
	"fmt"
	"strings"
)

// Default rectangle bounds, in screen coordinates.
const (
	DefaultLeft   = 41
	DefaultTop    = 0
	DefaultRight  = 1287
	DefaultBottom = 687

	// DefaultLogLevel applies when log_level is absent.
	DefaultLogLevel = "info"
)

// Rect is the target rectangle expressed as edges. Right and Bottom are
// exclusive.
type Rect struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Right  int `yaml:"right"`
}

// Width is Right - Left; it is not clamped.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height is Bottom - Top; it is not clamped.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Degenerate reports whether the rectangle has no positive area.
func (r Rect) Degenerate() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Window selects the windows to place.
type Window struct {
	Class string `yaml:"class"`
}

// Config is the fully resolved configuration.
type Config struct {
	Window   Window `yaml:"window"`
	Rect     Rect   `yaml:"rect"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file or key is present.
func DefaultConfig() *Config {
	return &Config{
		Window: Window{Class: DefaultWindowClass},
		Rect: Rect{
			Left:   DefaultLeft,
			Top:    DefaultTop,
			Bottom: DefaultBottom,
			Right:  DefaultRight,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks values the run cannot proceed without. A degenerate
// rectangle is accepted and produces a degenerate move.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Window.Class) == "" {
		return &ValidationError{Path: "window.class", Err: fmt.Errorf("window class must not be empty")}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	return nil
}

// ValidationError ties a rejected value to its key path and, when known, the
// file position it came from.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
