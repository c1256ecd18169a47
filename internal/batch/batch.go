// Package batch expands a feeding period into templated worklog files and
// turns a directory of them back into one concatenated feed.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cmoraes/tj-feed/internal/calendar"
	"github.com/cmoraes/tj-feed/internal/config"
	"github.com/cmoraes/tj-feed/internal/feed"
	"github.com/cmoraes/tj-feed/internal/worklog"
)

// ConflictError reports that creating a templated file would overwrite an
// existing one.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("refusing to overwrite existing file %q", e.Path)
}

// CreateMonthDir creates a yyyy-mm directory under root containing one
// header-only worklog file per workday of the period starting at startDay.
// It stops at the first failure; files created up to that point are kept.
func CreateMonthDir(root string, year, month, startDay int, holidays calendar.HolidaySet, log *zap.SugaredLogger) (string, error) {
	workdays, err := calendar.PeriodWorkdays(year, month, startDay, holidays)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(root, fmt.Sprintf("%04d-%02d", year, month))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating month directory %q: %w", dir, err)
	}

	header := strings.Join(worklog.Headers, ",") + "\n"
	for _, day := range workdays {
		path := filepath.Join(dir, day.Format("2006-01-02")+".csv")
		if err := writeTemplate(path, header); err != nil {
			return dir, err
		}
		log.Debugf("created %s", path)
	}
	return dir, nil
}

func writeTemplate(path, header string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if os.IsExist(err) {
		return &ConflictError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("creating worklog file %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("writing header to %q: %w", path, err)
	}
	return nil
}

// FeedMonthDir runs the single-day pipeline over every worklog file of a
// month directory, in filename order, and concatenates the output with one
// blank line between days and three whenever the ISO week changes. Files
// with no entries yet are skipped; the first failing file aborts the feed.
func FeedMonthDir(dir string, cfg config.Config, log *zap.SugaredLogger) (string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading month directory %q: %w", dir, err)
	}

	var (
		out      strings.Builder
		prevDate time.Time
		havePrev bool
	)
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || !strings.HasSuffix(name, ".csv") {
			continue
		}
		path := filepath.Join(dir, name)

		date, err := calendar.ParseFileDate(strings.TrimSuffix(name, ".csv"))
		if err != nil {
			return "", fmt.Errorf("feeding %q: %w", path, err)
		}

		entries, err := worklog.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("feeding %q: %w", path, err)
		}
		if len(entries) == 0 {
			log.Debugf("skipping %s: no entries", path)
			continue
		}

		if havePrev {
			if calendar.WeekChanged(prevDate, date) {
				out.WriteString("\n\n\n")
			} else {
				out.WriteString("\n")
			}
		}

		if warning := feed.Warning(feed.Total(entries), cfg.ShiftHours); warning != "" {
			log.Warnf("%s: %s", date.Format("2006-01-02"), warning)
			out.WriteString("# " + warning + "\n")
		}
		out.WriteString(feed.DailyFeed(entries, date, cfg))

		prevDate = date
		havePrev = true
	}
	return out.String(), nil
}
