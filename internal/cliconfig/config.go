package cliconfig

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dateselect/internal/domain"
)

// Selection modes accepted by Config.Mode.
const (
	ModeSingle = "single"
	ModeRange  = "range"
)

// Calendars accepted by Config.Calendar.
const (
	CalendarNative = "native"
	CalendarCivil  = "calendar"
)

// Config holds CLI configuration for dateselect.
type Config struct {
	Mode     string
	Calendar string

	// Initial selection, in YYYY-MM-DD form. Date applies to single mode,
	// Begin and End to range mode.
	Date  string
	Begin string
	End   string

	LogLevel string
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Mode:     ModeSingle,
		Calendar: CalendarNative,
		LogLevel: "info",
		Debounce: 100 * time.Millisecond,
	}
}

// RangeMode reports whether the configured mode selects ranges.
func (c *Config) RangeMode() bool {
	return c.Mode == ModeRange
}

// Validate checks the configuration for errors and normalizes enum values.
func (c *Config) Validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.Calendar = strings.ToLower(strings.TrimSpace(c.Calendar))

	switch c.Mode {
	case ModeSingle:
		if c.Begin != "" || c.End != "" {
			return fmt.Errorf("%w: begin/end require range mode", domain.ErrInvalidConfig)
		}
	case ModeRange:
		if c.Date != "" {
			return fmt.Errorf("%w: date requires single mode", domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidConfig, c.Mode)
	}

	if c.Calendar != CalendarNative && c.Calendar != CalendarCivil {
		return fmt.Errorf("%w: unknown calendar %q", domain.ErrInvalidConfig, c.Calendar)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", domain.ErrInvalidConfig, err)
	}

	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}

	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (DATESELECT_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("mode", os.Getenv("DATESELECT_MODE"), &cfg.Mode)
	s.setString("calendar", os.Getenv("DATESELECT_CALENDAR"), &cfg.Calendar)
	s.setString("date", os.Getenv("DATESELECT_DATE"), &cfg.Date)
	s.setString("begin", os.Getenv("DATESELECT_BEGIN"), &cfg.Begin)
	s.setString("end", os.Getenv("DATESELECT_END"), &cfg.End)
	s.setString("log-level", os.Getenv("DATESELECT_LOG_LEVEL"), &cfg.LogLevel)

	return s.setDuration("debounce", os.Getenv("DATESELECT_DEBOUNCE"), &cfg.Debounce)
}
