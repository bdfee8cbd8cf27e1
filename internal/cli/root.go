package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aidash",
	Short: "Dashboard for AI response analysis results",
	Long: `aidash renders a read-only dashboard over two pre-computed tables:
per-response text metrics and AI capability scores.

The tables are produced by an external analysis script; run it first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Flags shared by every command
var (
	configPath string
	logLevel   string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the log level: debug, info, warn, error")
}
