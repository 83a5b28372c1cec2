package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/winmover/internal/config"
	"github.com/1broseidon/winmover/internal/mover"
	"github.com/1broseidon/winmover/internal/platform"
)

const programName = "winmover"

// version is overridden at link time with -X main.version=...
var version = "0.7.0"

// openBackend is swapped in tests.
var openBackend = platform.Open

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [--config PATH] [--list] [--explain PATH] [-v]\n", programName)
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Move and resize every top-level window of the configured class to the")
		fmt.Fprintln(stderr, "configured rectangle, then exit.")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file path (default: user config dir)/winmover/config.yaml")
	listOnly := fs.Bool("list", false, "List top-level windows and their class names; move nothing")
	explainPath := fs.String("explain", "", "Print a config value and where it came from")
	verbose := fs.Bool("v", false, "Debug logging")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "%s takes no arguments\n", programName)
		fs.Usage()
		return 2
	}

	fmt.Fprintf(stdout, "%s version %s.\n", programName, version)
	if *showVersion {
		return 0
	}

	res, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *explainPath != "" {
		return explain(stdout, stderr, res, *explainPath)
	}

	level := res.Config.LogLevel
	if *verbose {
		level = "debug"
	}
	logger := newLogger(stderr, level)
	if res.File != "" {
		logger.Debug("configuration loaded", "file", res.File)
	} else {
		logger.Debug("no configuration file, using defaults")
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintln(stderr, &mover.EnumerationError{Err: err})
		return 1
	}
	defer backend.Disconnect()

	m := mover.New(backend, logger)
	if *listOnly {
		return list(stdout, stderr, m)
	}

	m.OnMoved = func(windowID platform.WindowID) {
		fmt.Fprintf(stdout, " - window [%s] moved.\n", windowID)
	}
	result, err := m.Run(mover.TargetFromConfig(res.Config))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "%d window(s) processed.\n", result.Matched)
	return 0
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// newLogger never filters above WARN: per-window failures are always reported.
func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning", "error":
		l = slog.LevelWarn
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func explain(stdout, stderr io.Writer, res *config.LoadResult, path string) int {
	value, src, err := config.Explain(res, path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintf(stderr, "known paths: %v\n", config.Paths())
		return 2
	}
	fmt.Fprintf(stdout, "%s: %v\n", path, value)
	if src.Kind == config.SourceFile {
		fmt.Fprintf(stdout, "source: %s:%d:%d\n", src.File, src.Line, src.Column)
	} else {
		fmt.Fprintln(stdout, "source: default")
	}
	return 0
}

func list(stdout, stderr io.Writer, m *mover.Mover) int {
	windows, err := m.List()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for _, w := range windows {
		if w.ClassErr != nil {
			fmt.Fprintf(stdout, "%s\t<unknown: %v>\n", w.WindowID, w.ClassErr)
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", w.WindowID, w.Class)
	}
	fmt.Fprintf(stdout, "%d window(s) listed.\n", len(windows))
	return 0
}
