package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmoraes/tj-feed/internal/calendar"
	"github.com/cmoraes/tj-feed/internal/feed"
	"github.com/cmoraes/tj-feed/internal/worklog"
)

var feedDate string

var feedCmd = &cobra.Command{
	Use:   "feed <file.csv>",
	Short: "Generate a day's TaskJuggler feed from a worklog file",
	Long: `Generates booking lines for one day. The booking date is derived from
the filename, which must follow the format yyyy-mm-dd.csv (e.g. 2021-09-24.csv).`,
	Args: cobra.ExactArgs(1),
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().StringVar(&feedDate, "date", "", "Booking date as yyyy-mm-dd (deprecated: the date is derived from the filename)")
}

func runFeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := args[0]
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if feedDate != "" {
		log.Warnf("--date is deprecated; name the file yyyy-mm-dd.csv instead")
		stem = feedDate
	}
	date, err := calendar.ParseFileDate(stem)
	if err != nil {
		return err
	}

	entries, err := worklog.ReadFile(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%q has no entries", path)
	}

	fmt.Print(feed.DailyFeed(entries, date, cfg))

	if warning := feed.Warning(feed.Total(entries), cfg.ShiftHours); warning != "" {
		log.Warn(warning)
	}
	return nil
}
