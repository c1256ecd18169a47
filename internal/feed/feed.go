// Package feed lays worklog entries out as sequential bookings and renders
// them as TaskJuggler booking lines.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmoraes/tj-feed/internal/config"
	"github.com/cmoraes/tj-feed/internal/model"
)

const timestampLayout = "2006-01-02-15:04"

// Scheduler assigns start times to entries one after another, tracking the
// day's cumulative duration to flag overtime.
type Scheduler struct {
	shift      model.Duration
	cursor     time.Time
	cumulative model.Duration
}

// NewScheduler returns a Scheduler whose cursor starts at startingHour on
// the given date.
func NewScheduler(date time.Time, startingHour, shiftHours int) *Scheduler {
	return &Scheduler{
		shift:  model.Duration(shiftHours * 60),
		cursor: time.Date(date.Year(), date.Month(), date.Day(), startingHour, 0, 0, 0, date.Location()),
	}
}

// Book schedules one entry at the current cursor and advances the cursor by
// its duration. An entry is tagged with overtime units only when its close
// pushes the cumulative total past a multiple of the shift length; a
// cumulative total landing exactly on a multiple is not overtime.
func (s *Scheduler) Book(entry model.TimeEntry) model.Booking {
	booking := model.Booking{
		IssueName:   entry.IssueName,
		Start:       s.cursor,
		Duration:    entry.Duration,
		Description: entry.IssueDescription,
	}

	before := s.shiftsSpanned(s.cumulative)
	s.cumulative += entry.Duration
	after := s.shiftsSpanned(s.cumulative)
	if after > before {
		booking.OvertimeUnits = after - 1
	}

	s.cursor = s.cursor.Add(time.Duration(entry.Duration) * time.Minute)
	return booking
}

// shiftsSpanned counts how many shift lengths a cumulative duration reaches
// into, with exact multiples counting as still inside the previous shift.
func (s *Scheduler) shiftsSpanned(d model.Duration) int {
	return (d.Minutes() + s.shift.Minutes() - 1) / s.shift.Minutes()
}

// FormatLine renders one booking as a single feed line. The output depends
// only on the booking and the display mode.
func FormatLine(b model.Booking, useMinutes bool) string {
	spent := b.Duration.Format(useMinutes)
	if b.OvertimeUnits > 0 {
		spent = fmt.Sprintf("%-7s {overtime %d}", spent, b.OvertimeUnits)
	}

	timestamp := b.Start.Format(timestampLayout)
	if b.Description != "" {
		return fmt.Sprintf("booking %-30s %s %-20s # %s", b.IssueName, timestamp, spent, b.Description)
	}
	return strings.TrimRight(fmt.Sprintf("booking %-30s %s %-20s", b.IssueName, timestamp, spent), " ")
}

// DailyFeed runs the scheduler over a day's entries and renders one line per
// booking, each terminated by a newline.
func DailyFeed(entries []model.TimeEntry, date time.Time, cfg config.Config) string {
	var sb strings.Builder
	scheduler := NewScheduler(date, cfg.StartingHour, cfg.ShiftHours)
	for _, entry := range entries {
		sb.WriteString(FormatLine(scheduler.Book(entry), cfg.UseMinutes))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Total sums the durations of a day's entries.
func Total(entries []model.TimeEntry) model.Duration {
	var total model.Duration
	for _, entry := range entries {
		total += entry.Duration
	}
	return total
}

// Warning describes how far a day's total falls short of, or exceeds, the
// configured shift. It returns "" when the total matches the shift exactly.
func Warning(total model.Duration, shiftHours int) string {
	expected := model.Duration(shiftHours * 60)
	switch {
	case total < expected:
		missing := expected - total
		return fmt.Sprintf("You are missing %.2f hours (%d minutes)", missing.Hours(), missing.Minutes())
	case total > expected:
		overtime := total - expected
		return fmt.Sprintf("You've worked overtime of %.2f hours (%d minutes)", overtime.Hours(), overtime.Minutes())
	default:
		return ""
	}
}
