package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edubars/barskema"
	"github.com/edubars/barskema/i18n"
	"github.com/edubars/barskema/internal/config"
	"github.com/edubars/barskema/internal/logging"
)

var (
	// Global flags
	verbose bool
	format  string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "barsctl",
	Short: "Decode, sanitize and fetch BARS school portal records",
	Long: `barsctl works with the records of the BARS school portal.

It decodes JSON or YAML wire documents into typed records, cleans their
HTML text fields, prints record JSON Schemas and calls the portal API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		if err != nil {
			return err
		}
		i18n.SetLanguage(cfg.Log.Language)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "output format: json or yaml")

	rootCmd.AddCommand(typesCmd, decodeCmd, schemaCmd, fetchCmd)
}

// reporter sends decode and sanitize warnings to the logger.
func reporter() barskema.Reporter { return logging.Reporter(logger) }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
