package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Mode     string `toml:"mode"`
	Calendar string `toml:"calendar"`
	Date     string `toml:"date"`
	Begin    string `toml:"begin"`
	End      string `toml:"end"`
	LogLevel string `toml:"log_level"`
	Debounce string `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.dateselect/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".dateselect", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("mode", fc.Mode, &cfg.Mode)
	s.setString("calendar", fc.Calendar, &cfg.Calendar)
	s.setString("date", fc.Date, &cfg.Date)
	s.setString("begin", fc.Begin, &cfg.Begin)
	s.setString("end", fc.End, &cfg.End)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	return s.setDuration("debounce", fc.Debounce, &cfg.Debounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
