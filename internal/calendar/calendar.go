// Package calendar answers the date questions batch processing needs:
// which days of a period are workdays, and when an ISO week boundary is
// crossed between two processed days.
package calendar

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/dromara/carbon/v2"
)

const dateLayout = "2006-01-02"

// datePattern matches a yyyy-mm-dd date with any non-digit separators.
var (
	datePattern = regexp.MustCompile(`\d{4}\D\d{2}\D\d{2}`)
	nonDigit    = regexp.MustCompile(`\D`)
)

// HolidaySet is an immutable set of holiday dates.
type HolidaySet map[string]struct{}

// Contains reports whether the set holds t's calendar date.
func (h HolidaySet) Contains(t time.Time) bool {
	_, ok := h[t.Format(dateLayout)]
	return ok
}

// LoadHolidays reads a holiday file, one yyyy-mm-dd date per line. Any
// non-digit separator is accepted; lines without a date are ignored.
func LoadHolidays(path string) (HolidaySet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening holidays file %q: %w", path, err)
	}
	defer f.Close()

	holidays := HolidaySet{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		match := datePattern.FindString(scanner.Text())
		if match == "" {
			continue
		}
		normalized := nonDigit.ReplaceAllString(match, "-")
		if !carbon.ParseByLayout(normalized, dateLayout).IsValid() {
			continue
		}
		holidays[normalized] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading holidays file %q: %w", path, err)
	}
	return holidays, nil
}

// ParseFileDate extracts the date encoded in a worklog filename stem
// ("2021-09-30" from "2021-09-30.csv").
func ParseFileDate(stem string) (time.Time, error) {
	c := carbon.ParseByLayout(stem, dateLayout)
	if !c.IsValid() {
		return time.Time{}, fmt.Errorf("filename %q does not encode a yyyy-mm-dd date", stem)
	}
	return c.StdTime(), nil
}

// PeriodWorkdays enumerates the workdays of a feeding period: every day from
// startDay of the given month up to, but not including, startDay of the
// following month, skipping weekends and holidays. With startDay 1 this is
// exactly the calendar month.
func PeriodWorkdays(year, month, startDay int, holidays HolidaySet) ([]time.Time, error) {
	first := carbon.CreateFromDate(year, month, 1)
	if startDay > first.DaysInMonth() {
		return nil, fmt.Errorf("month %04d-%02d has no day %d", year, month, startDay)
	}

	var workdays []time.Time
	for c := carbon.CreateFromDate(year, month, startDay); ; c = c.AddDay() {
		if c.Day() == startDay && (c.Month() != month || c.Year() != year) {
			break
		}
		if c.IsWeekend() || holidays.Contains(c.StdTime()) {
			continue
		}
		workdays = append(workdays, c.StdTime())
	}
	return workdays, nil
}

// WeekChanged reports whether two dates fall in different ISO weeks.
func WeekChanged(previous, current time.Time) bool {
	py, pw := previous.ISOWeek()
	cy, cw := current.ISOWeek()
	return py != cy || pw != cw
}
