// Package cli provides flag binding and validation for the alrm CLI.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/alrm/internal/config"
)

// BindFlags registers all CLI flags on the given cobra command. The flags
// directly modify fields in the provided config pointer. Call ValidateFlags
// after parsing to check flag values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	flags.BoolVarP(&cfg.Update, "update", "u", false, "Update the countdown until the time has passed and then exit")
	flags.DurationVar(&cfg.Interval, "interval", time.Second, "Redraw period used with --update")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print debug details about the parsed time")
}

// ValidateFlags checks flag values after parsing. Must be called after
// cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %s", cfg.Interval)
	}
	return nil
}
