// Package main is the grapegeek command: it serves the cold-climate grape
// site, exports it as static files and prepares SQL datasets.
// Its sole responsibility is wiring dependencies together.
// No business logic belongs here.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/p-gag/grapegeek-sub001/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "grapegeek",
	Short: "Cold-climate grape varieties and the winegrowers who grow them",
	Long: `grapegeek serves a multilingual catalog of cold-hardy grape varieties
and winegrowers, or renders it into a directory of static files.

Configuration is read from the environment (and a .env file when present).
DATASET_DRIVER selects the data source: seed (embedded), sqlite or postgres.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger = newLogger(cfg.LogLevel)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, exportCmd, migrateCmd, seedCmd)
}

// newLogger writes JSON lines to stdout at the configured level.
// An unknown level falls back to info.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
