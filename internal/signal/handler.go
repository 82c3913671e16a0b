// Package signal provides interrupt handling for the alrm CLI.
//
// SetupSignalHandler registers SIGINT and SIGTERM handlers so an in-flight
// countdown can stop cleanly by canceling its context.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler registers SIGINT and SIGTERM handlers. When a signal
// is received, the onInterrupt callback (if non-nil) runs first, then the
// context is canceled. The listening goroutine exits when either a signal
// arrives or the context is canceled.
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
			return
		}
	}()
}
