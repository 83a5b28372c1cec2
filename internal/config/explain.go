package config

import (
	"fmt"
	"sort"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths:
//
//	window.class
//	rect.left
//	rect.top
//	rect.bottom
//	rect.right
//	log_level
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

// Paths lists every path Explain accepts, sorted.
func Paths() []string {
	paths := make([]string, 0, len(lookups))
	for p := range lookups {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

var lookups = map[string]func(*Config) any{
	"window.class": func(c *Config) any { return c.Window.Class },
	"rect.left":    func(c *Config) any { return c.Rect.Left },
	"rect.top":     func(c *Config) any { return c.Rect.Top },
	"rect.bottom":  func(c *Config) any { return c.Rect.Bottom },
	"rect.right":   func(c *Config) any { return c.Rect.Right },
	"log_level":    func(c *Config) any { return c.LogLevel },
}

func lookupValue(cfg *Config, path string) (any, error) {
	get, ok := lookups[path]
	if !ok {
		return nil, fmt.Errorf("unknown path: %s", path)
	}
	return get(cfg), nil
}
