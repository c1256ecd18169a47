package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cmoraes/tj-feed/internal/config"
)

var (
	cfgPath string
	verbose bool
	log     *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "tjfeed",
	Short: "tjfeed – generate TaskJuggler booking feeds from daily worklogs",
	Long: `tjfeed turns daily time-tracking CSV files into TaskJuggler booking
lines. Worklog files are named yyyy-mm-dd.csv and hold one entry per row:
time spent ("30min" or "0.5h"), issue name, and an optional description.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (default ~/.tjfeed/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(defineCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(createMonthCmd)
	rootCmd.AddCommand(feedMonthCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.DisableCaller = true
	zapCfg.DisableStacktrace = true
	if !verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	log = logger.Sugar()
	return nil
}

// configFilePath resolves the --config flag, falling back to the default
// location under the user's home directory.
func configFilePath() (string, error) {
	if cfgPath != "" {
		return cfgPath, nil
	}
	return config.DefaultPath()
}

func loadConfig() (config.Config, error) {
	path, err := configFilePath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}
