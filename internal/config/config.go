// Package config defines the alrm configuration model and default values.
//
// alrm is configured entirely through CLI flags; the flags are bound
// directly onto a Config by internal/cli.BindFlags.
package config

import "time"

// Config holds every configuration field for the alrm CLI.
type Config struct {
	// Update redraws the countdown until the target time passes.
	Update bool

	// Interval is the redraw period used with Update.
	Interval time.Duration

	// Verbose enables debug output about the parsed time and target.
	Verbose bool
}

// NewDefaultConfig returns a Config populated with built-in defaults:
// single-shot output, one-second redraw interval, quiet.
func NewDefaultConfig() *Config {
	return &Config{
		Update:   false,
		Interval: time.Second,
		Verbose:  false,
	}
}
