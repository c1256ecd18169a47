package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmoraes/tj-feed/internal/config"
)

var (
	defineStartingHour      int
	defineShiftHours        int
	defineUseMinutes        bool
	defineHolidaysFile      string
	defineMonthStartWorkday int
)

var defineCmd = &cobra.Command{
	Use:   "define",
	Short: "Set default configuration values",
	Args:  cobra.NoArgs,
	RunE:  runDefine,
}

func init() {
	defineCmd.Flags().IntVar(&defineStartingHour, "starting-hour", config.DefaultStartingHour, "Hour of day (0-23) the first booking starts at")
	defineCmd.Flags().IntVar(&defineShiftHours, "shift-hours", config.DefaultShiftHours, "Shift length in hours")
	defineCmd.Flags().BoolVar(&defineUseMinutes, "use-minutes", false, "Feed durations in minutes instead of hours")
	defineCmd.Flags().StringVar(&defineHolidaysFile, "holidays-file", "", "Path to file listing holiday dates (one yyyy-mm-dd per line)")
	defineCmd.Flags().IntVar(&defineMonthStartWorkday, "month-start-workday", config.DefaultMonthStartWorkday, "Day of month (1-31) a feeding period starts on")
}

func runDefine(cmd *cobra.Command, args []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("starting-hour") {
		fmt.Printf("Defining starting hour as %d\n", defineStartingHour)
		cfg.StartingHour = defineStartingHour
	}
	if flags.Changed("shift-hours") {
		fmt.Printf("Defining shift duration as %d hours\n", defineShiftHours)
		cfg.ShiftHours = defineShiftHours
	}
	if flags.Changed("use-minutes") {
		unit := "hours"
		if defineUseMinutes {
			unit = "minutes"
		}
		fmt.Printf("Defining duration unit as %s\n", unit)
		cfg.UseMinutes = defineUseMinutes
	}
	if flags.Changed("holidays-file") {
		if _, err := os.Stat(defineHolidaysFile); err != nil {
			return fmt.Errorf("holidays file %q: %w", defineHolidaysFile, err)
		}
		fmt.Printf("Defining holidays file as %s\n", defineHolidaysFile)
		cfg.HolidaysFile = defineHolidaysFile
	}
	if flags.Changed("month-start-workday") {
		fmt.Printf("Defining month starting workday as %d\n", defineMonthStartWorkday)
		cfg.MonthStartWorkday = defineMonthStartWorkday
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("Saved configuration to %s\n", path)
	return nil
}
