package model

import "time"

// TimeEntry is one parsed row of a day's worklog file. Entries are
// immutable once constructed; their file order determines scheduling order.
type TimeEntry struct {
	Duration         Duration
	IssueName        string
	IssueDescription string
}

// Booking is a scheduled, timestamped entry ready to be rendered as a
// TaskJuggler booking line.
type Booking struct {
	IssueName     string
	Start         time.Time
	Duration      Duration
	OvertimeUnits int
	Description   string
}
