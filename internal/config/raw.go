package config

// Raw* types mirror the file layout with pointer fields so an absent key can
// be told apart from a zero value.

type RawWindow struct {
	Class *string `yaml:"class"`
}

type RawRect struct {
	Left   *int `yaml:"left"`
	Top    *int `yaml:"top"`
	Bottom *int `yaml:"bottom"`
	Right  *int `yaml:"right"`
}

type RawConfig struct {
	Window   *RawWindow `yaml:"window"`
	Rect     *RawRect   `yaml:"rect"`
	LogLevel *string    `yaml:"log_level"`
}
