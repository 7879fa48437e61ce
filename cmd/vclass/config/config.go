// Package config stores the optional vclass user preferences. Preferences
// only affect presentation and diagnostics; roster data always lives in
// classes.txt and students.txt regardless of configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// File is the preferences file, looked up in the working directory next to
// the roster files.
const File = "vclass.yaml"

// Config holds user preferences.
type Config struct {
	Theme   string `yaml:"theme"`   // "auto", "light", "dark" or "mono"
	Verbose bool   `yaml:"verbose"` // debug logging to vclass.log
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme: "auto",
	}
}

// Load reads the preferences file. A missing file is not an error; the
// defaults are returned, as they are alongside any read or parse error.
func Load() (Config, error) {
	data, err := os.ReadFile(File)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}
