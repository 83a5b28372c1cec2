package config

// BuildEffectiveConfig overlays raw onto the defaults. Every key falls back
// independently.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Window != nil && raw.Window.Class != nil {
		cfg.Window.Class = *raw.Window.Class
	}
	if r := raw.Rect; r != nil {
		if r.Left != nil {
			cfg.Rect.Left = *r.Left
		}
		if r.Top != nil {
			cfg.Rect.Top = *r.Top
		}
		if r.Bottom != nil {
			cfg.Rect.Bottom = *r.Bottom
		}
		if r.Right != nil {
			cfg.Rect.Right = *r.Right
		}
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}

	return cfg
}
