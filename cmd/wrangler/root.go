package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mestiri/wrangler/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "wrangler",
	Short: "Wrangler classifies asset roots in scene-graph snapshots",
	Long: `Wrangler scans scene-graph snapshots exported from the animation pipeline
and classifies their asset root nodes: characters, props, environments and
unclassified groups.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// newLogger builds the command logger from the --log-level flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		fmt.Printf("Warning: %v, using info\n", err)
		level = slog.LevelInfo
	}
	return logging.New(level)
}
