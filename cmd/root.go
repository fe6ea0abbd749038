package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "focusos",
	Short: "FocusOS – a focus-session tracker with streak analytics",
	Long: `focusos serves the FocusOS REST API: per-day focus entries in MongoDB,
derived analytics (streaks, heatmap, category rollups, efficiency) and an
optional AI weekly summary.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
