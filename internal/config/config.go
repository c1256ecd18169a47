// Package config loads and persists the shift settings used to schedule
// bookings, stored in ~/.tjfeed/config.json.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the process-wide shift settings. It is loaded once per run
// and never mutated by the feed path; only "tjfeed define" writes it back.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// StartingHour is the hour of day (0-23) at which the first booking starts.
	StartingHour int `json:"starting_hour"`
	// ShiftHours is the nominal shift length in hours.
	ShiftHours int `json:"shift_hours"`
	// UseMinutes selects the duration unit in feed output: minutes when true,
	// fractional hours when false.
	UseMinutes bool `json:"use_minutes"`
	// HolidaysFile points to a file listing holiday dates, one yyyy-mm-dd per
	// line. Required for create-month; empty means unset.
	HolidaysFile string `json:"holidays_file"`
	// MonthStartWorkday is the day of month (1-31) a feeding period starts on.
	MonthStartWorkday int `json:"month_start_workday"`
}

const (
	DefaultStartingHour      = 9
	DefaultShiftHours        = 8
	DefaultMonthStartWorkday = 1
)

// ErrMissingHolidaysFile is returned when an operation needs the holiday
// list but no path has been configured.
var ErrMissingHolidaysFile = errors.New(
	`holidays file not set (run "tjfeed define --holidays-file <path>")`)

func defaultConfig() Config {
	return Config{
		StartingHour:      DefaultStartingHour,
		ShiftHours:        DefaultShiftHours,
		UseMinutes:        false,
		HolidaysFile:      "",
		MonthStartWorkday: DefaultMonthStartWorkday,
	}
}

// configTemplate is the annotated form the config file is written in. Lines
// whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// tjfeed configuration – ~/.tjfeed/config.json
//
// All settings can be changed with "tjfeed define"; editing this file by
// hand works too.
{
  // Hour of day (0-23) the first booking of a day starts at.
  "starting_hour": %d,

  // Nominal shift length in hours; bookings past it are tagged {overtime N}.
  "shift_hours": %d,

  // true: feed durations as "+30min"; false: as "+0.50h".
  "use_minutes": %t,

  // File listing holiday dates, one yyyy-mm-dd per line. Required for
  // "tjfeed create-month".
  "holidays_file": %s,

  // Day of month (1-31) a feeding period starts on. Values above 1 support
  // invoicing periods that span into the next calendar month.
  "month_start_workday": %d
}
`

// DefaultPath returns the path to ~/.tjfeed/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tjfeed", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads the config file at path, creating it with annotated defaults on
// first run. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := Save(path, defaultConfig()); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	// Unmarshalling over the defaults keeps them for absent fields while
	// letting explicit zero values (e.g. starting_hour 0) through.
	cfg := defaultConfig()
	if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return defaultConfig(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config in its annotated form, creating the directory if
// needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	holidays, err := json.Marshal(cfg.HolidaysFile)
	if err != nil {
		return fmt.Errorf("encoding holidays file path: %w", err)
	}
	content := fmt.Sprintf(configTemplate,
		cfg.StartingHour, cfg.ShiftHours, cfg.UseMinutes, holidays, cfg.MonthStartWorkday)

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the field ranges.
func (c Config) Validate() error {
	if c.StartingHour < 0 || c.StartingHour > 23 {
		return fmt.Errorf("starting_hour must be between 0 and 23 (got %d)", c.StartingHour)
	}
	if c.ShiftHours < 1 || c.ShiftHours > 24 {
		return fmt.Errorf("shift_hours must be between 1 and 24 (got %d)", c.ShiftHours)
	}
	if c.MonthStartWorkday < 1 || c.MonthStartWorkday > 31 {
		return fmt.Errorf("month_start_workday must be between 1 and 31 (got %d)", c.MonthStartWorkday)
	}
	return nil
}

// RequireHolidaysFile returns the configured holidays file path or
// ErrMissingHolidaysFile when unset.
func (c Config) RequireHolidaysFile() (string, error) {
	if c.HolidaysFile == "" {
		return "", ErrMissingHolidaysFile
	}
	return c.HolidaysFile, nil
}
