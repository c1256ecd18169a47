package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmoraes/tj-feed/internal/batch"
)

var feedMonthCmd = &cobra.Command{
	Use:   "feed-month <dir>",
	Short: "Generate a feed for a whole month directory",
	Long: `Runs the daily feed over every worklog file of a month directory in
chronological order, separating days with one blank line and weeks with
three. Files that are still empty templates are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runFeedMonth,
}

func runFeedMonth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output, err := batch.FeedMonthDir(args[0], cfg, log)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}
