package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cmoraes/tj-feed/internal/batch"
	"github.com/cmoraes/tj-feed/internal/calendar"
)

var createMonthCmd = &cobra.Command{
	Use:   "create-month <root-dir> <year> <month>",
	Short: "Create a month's worth of empty worklog templates",
	Long: `Creates a yyyy-mm directory under root-dir containing one header-only
worklog file per workday, skipping weekends and the configured holidays.

E.g.:
    root-dir/
    |__ 2022-01/
        |__ 2022-01-03.csv
        |__ 2022-01-04.csv
        ...
        |__ 2022-01-31.csv`,
	Args: cobra.ExactArgs(3),
	RunE: runCreateMonth,
}

func runCreateMonth(cmd *cobra.Command, args []string) error {
	root := args[0]
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[1])
	}
	month, err := strconv.Atoi(args[2])
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("invalid month %q (expected 1-12)", args[2])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	holidaysFile, err := cfg.RequireHolidaysFile()
	if err != nil {
		return err
	}
	holidays, err := calendar.LoadHolidays(holidaysFile)
	if err != nil {
		return err
	}

	dir, err := batch.CreateMonthDir(root, year, month, cfg.MonthStartWorkday, holidays, log)
	if err != nil {
		return err
	}
	fmt.Printf("Created worklog templates in %s\n", dir)
	return nil
}
