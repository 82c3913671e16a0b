// Package countdown renders the remaining-time display for the alrm CLI.
//
// Without update mode a single line is printed and Run returns. In update
// mode the line is redrawn once per interval until the target passes or the
// context is canceled.
package countdown

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/alrm/internal/schedule"
)

// clearLine moves the cursor up one line and erases it before a redraw.
const clearLine = "\x1b[1A\x1b[2K"

var remainingColor = color.New(color.FgHiYellow).SprintFunc()

// Options controls how Run behaves. Now defaults to time.Now and exists for
// tests.
type Options struct {
	// Update redraws the countdown every Interval until the target passes.
	Update bool

	// Interval is the redraw period in update mode.
	Interval time.Duration

	// Out receives the rendered countdown lines.
	Out io.Writer

	// Now reports the current time. Nil means time.Now.
	Now func() time.Time
}

// Run prints the time remaining until target as "HH:MM:SS until <label>
// today|tomorrow". The label is the caller's display form of the target
// time, e.g. "6:30pm". In update mode Run returns nil once the target has
// passed, or ctx.Err() if the context is canceled first.
func Run(ctx context.Context, target time.Time, label string, opts Options) error {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	first := true
	for {
		current := now()
		line := fmt.Sprintf("%s until %s %s",
			remainingColor(FormatHHMMSS(target.Sub(current))),
			label,
			schedule.RelativeDay(current, target),
		)

		prefix := ""
		if !first {
			prefix = clearLine
		}
		if _, err := fmt.Fprintln(opts.Out, prefix+line); err != nil {
			return err
		}
		first = false

		if !opts.Update {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Interval):
		}

		if !target.After(now()) {
			return nil
		}
	}
}

// FormatHHMMSS renders a duration as zero-padded "HH:MM:SS". Negative
// durations clamp to "00:00:00"; hours do not wrap, so 26h shows as "26".
func FormatHHMMSS(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
