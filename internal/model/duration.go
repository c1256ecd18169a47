package model

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedDuration is returned for time-spent tokens that match neither
// the minute nor the hour format, or that resolve to a non-positive duration.
var ErrMalformedDuration = errors.New("malformed duration")

// durationPattern accepts an optional leading + followed by a number and a
// unit suffix: "30min", "+30min", "0.5h", ".25h".
var durationPattern = regexp.MustCompile(`^\+?(\d+(\.\d*)?|\.\d+)(min|h)$`)

// Duration is a booked amount of time in whole minutes.
type Duration int

// Minutes returns the duration as whole minutes.
func (d Duration) Minutes() int { return int(d) }

// Hours returns the duration as fractional hours.
func (d Duration) Hours() float64 { return float64(d) / 60 }

// Format renders the duration as a signed feed token: "+30min" in minute
// mode, "+0.50h" in hour mode.
func (d Duration) Format(useMinutes bool) string {
	if useMinutes {
		return fmt.Sprintf("+%dmin", d.Minutes())
	}
	return fmt.Sprintf("+%.2fh", d.Hours())
}

// ParseDuration parses a time-spent token into a Duration. Two formats are
// recognised: an integer minute count suffixed with "min", and a decimal
// hour count suffixed with "h". Hours are rounded to the nearest minute.
func ParseDuration(token string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (expected formats: XYmin or X.Yh)", ErrMalformedDuration, token)
	}

	number, unit := m[1], m[3]

	var minutes int
	switch unit {
	case "h":
		hours, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrMalformedDuration, token, err)
		}
		minutes = int(math.Round(hours * 60))
	default:
		if strings.Contains(number, ".") {
			return 0, fmt.Errorf("%w: %q (minutes must be a whole number)", ErrMalformedDuration, token)
		}
		n, err := strconv.Atoi(number)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrMalformedDuration, token, err)
		}
		minutes = n
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("%w: %q (duration must be positive)", ErrMalformedDuration, token)
	}
	return Duration(minutes), nil
}
