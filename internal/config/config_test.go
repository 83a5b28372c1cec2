package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	want := Rect{Left: 41, Top: 0, Bottom: 687, Right: 1287}
	if cfg.Rect != want {
		t.Fatalf("expected default rect %+v, got %+v", want, cfg.Rect)
	}
	if cfg.Window.Class != DefaultWindowClass {
		t.Fatalf("expected default class %q, got %q", DefaultWindowClass, cfg.Window.Class)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *res.Config != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", res.Config)
	}
	if res.File != "" {
		t.Fatalf("expected no file recorded, got %q", res.File)
	}
	if len(res.Sources) != 0 {
		t.Fatalf("expected no file sources, got %v", res.Sources)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *res.Config != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", res.Config)
	}
}

func TestLoadFromPath_FullDocument(t *testing.T) {
	data := strings.Join([]string{
		"window:",
		"  class: Thunar",
		"rect:",
		"  left: 10",
		"  top: 20",
		"  bottom: 400",
		"  right: 600",
		"log_level: debug",
		"",
	}, "\n")

	res, err := LoadFromPath(writeConfig(t, data))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Window.Class != "Thunar" {
		t.Fatalf("expected class Thunar, got %q", res.Config.Window.Class)
	}
	want := Rect{Left: 10, Top: 20, Bottom: 400, Right: 600}
	if res.Config.Rect != want {
		t.Fatalf("expected rect %+v, got %+v", want, res.Config.Rect)
	}
	if res.Config.LogLevel != "debug" {
		t.Fatalf("expected log_level debug, got %q", res.Config.LogLevel)
	}
}

func TestLoadFromPath_MissingTopFallsBackAlone(t *testing.T) {
	data := strings.Join([]string{
		"rect:",
		"  left: 5",
		"  bottom: 300",
		"  right: 800",
		"",
	}, "\n")

	res, err := LoadFromPath(writeConfig(t, data))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Rect{Left: 5, Top: DefaultTop, Bottom: 300, Right: 800}
	if res.Config.Rect != want {
		t.Fatalf("expected rect %+v, got %+v", want, res.Config.Rect)
	}
	if res.Config.Window.Class != DefaultWindowClass {
		t.Fatalf("expected default class, got %q", res.Config.Window.Class)
	}

	_, src, err := Explain(res, "rect.top")
	if err != nil {
		t.Fatalf("explain rect.top: %v", err)
	}
	if src.Kind != SourceDefault {
		t.Fatalf("expected rect.top from defaults, got %#v", src)
	}
	val, src, err := Explain(res, "rect.left")
	if err != nil {
		t.Fatalf("explain rect.left: %v", err)
	}
	if val != 5 || src.Kind != SourceFile || src.Line != 2 {
		t.Fatalf("expected rect.left=5 from file line 2, got %#v %#v", val, src)
	}
}

func TestLoadFromPath_ClassOnlyKeepsDefaultRect(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "window:\n  class: Nemo\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Window.Class != "Nemo" {
		t.Fatalf("expected class Nemo, got %q", res.Config.Window.Class)
	}
	if res.Config.Rect != DefaultConfig().Rect {
		t.Fatalf("expected default rect, got %+v", res.Config.Rect)
	}
}

func TestLoadFromPath_DegenerateRectAccepted(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "rect:\n  left: 100\n  right: 50\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !res.Config.Rect.Degenerate() {
		t.Fatalf("expected degenerate rect, got %+v", res.Config.Rect)
	}
	if res.Config.Rect.Width() != -50 {
		t.Fatalf("expected width -50, got %d", res.Config.Rect.Width())
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	path := writeConfig(t, "unknown_key: 1\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown_key") && !strings.Contains(err.Error(), "field") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if !strings.Contains(err.Error(), filepath.Base(path)) {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_MalformedYAMLErrors(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "rect: [1, 2\n"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadFromPath_EmptyClassReportsSource(t *testing.T) {
	path := writeConfig(t, "window:\n  class: \"\"\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Path != "window.class" {
		t.Fatalf("expected path window.class, got %q", verr.Path)
	}
	if verr.Source.Kind != SourceFile || verr.Source.Line != 2 {
		t.Fatalf("expected source at line 2, got %#v", verr.Source)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected log_level error")
	}
	cfg.LogLevel = "warning"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected warning to be accepted, got %v", err)
	}
}

func TestExplain_UnknownPath(t *testing.T) {
	res := &LoadResult{Config: DefaultConfig()}
	if _, _, err := Explain(res, "rect.width"); err == nil {
		t.Fatalf("expected unknown path error")
	}
	for _, p := range Paths() {
		if _, _, err := Explain(res, p); err != nil {
			t.Fatalf("explain %s: %v", p, err)
		}
	}
}
