package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/alrm/internal/cli"
	"github.com/CodexForgeBR/alrm/internal/config"
	"github.com/CodexForgeBR/alrm/internal/countdown"
	"github.com/CodexForgeBR/alrm/internal/exitcode"
	"github.com/CodexForgeBR/alrm/internal/logging"
	"github.com/CodexForgeBR/alrm/internal/schedule"
	sighandler "github.com/CodexForgeBR/alrm/internal/signal"
	"github.com/CodexForgeBR/alrm/internal/timeparse"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "alrm [time]...",
		Short: "A quick countdown timer for your terminal",
		Long: "Give alrm a time of day and it prints how long you have until then.\n" +
			"If TIME has already passed today, alrm counts down to TIME tomorrow.\n\n" +
			"Examples:\n" +
			"  alrm 9         # time until 9:00 (24-hour)\n" +
			"  alrm 9:30pm    # time until 9:30 pm\n" +
			"  alrm 9:00 -u   # count down to 9:00 and then exit",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runCountdown(cmd, cfg, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

func runCountdown(cmd *cobra.Command, cfg *config.Config, args []string) error {
	logging.SetVerbose(cfg.Verbose)

	// Multi-token input like "6:30 pm" arrives as separate args.
	input := strings.Join(args, " ")

	parsed, err := timeparse.Parse(input)
	if err != nil {
		// The error renders as a span-anchored diagnostic; print it
		// verbatim rather than through the logger.
		fmt.Fprint(os.Stderr, err)
		os.Exit(exitcode.ParseError)
	}
	logging.Debug(fmt.Sprintf("parsed %q as %s", input, parsed))

	target := schedule.NextOccurrence(time.Now(), parsed)
	logging.Debug(fmt.Sprintf("counting down to %s", target.Format(time.RFC3339)))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sighandler.SetupSignalHandler(ctx, cancel, nil)

	err = countdown.Run(ctx, target, parsed.Clock12(), countdown.Options{
		Update:   cfg.Update,
		Interval: cfg.Interval,
		Out:      os.Stdout,
	})
	if errors.Is(err, context.Canceled) {
		os.Exit(exitcode.Interrupted)
	}
	return err
}
