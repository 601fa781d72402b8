package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/specials-tracker/internal/common"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	envFile   string
	logFormat string
	logLevel  string
}

// set by PersistentPreRunE for every subcommand
var (
	cfg    *common.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "specials-tracker",
	Short: "Harvest venue daily specials into a structured table",
	Long: "specials-tracker renders venue pages, downloads PDF and image menus, asks a\n" +
		"language model for the daily specials, and replaces each venue's stored rows.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := common.LoadConfig(rootFlags.envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-format") {
			c.Log.Format = rootFlags.logFormat
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level = rootFlags.logLevel
		}
		cfg = c
		logger = common.NewLogger(c.Log.Format, c.Log.Level, cmd.ErrOrStderr())
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json (overrides LOG_FORMAT)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(initDBCmd)
	rootCmd.Version = version
}
