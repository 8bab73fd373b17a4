package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Serve runs serve until one of signals arrives, ctx is cancelled or serve
// returns on its own. It then stops every target in order under a single
// timeout and returns only after all of them have finished, so callers may
// release shared resources right after it returns. The error is serve's.
func Serve(ctx context.Context, signals []os.Signal, timeout time.Duration, log *logging.Logger, serve func() error, targets ...Stoppable) error {
	// no signals means ctx alone triggers shutdown
	sigCtx, stop := ctx, context.CancelFunc(func() {})
	if len(signals) > 0 {
		sigCtx, stop = signal.NotifyContext(ctx, signals...)
	}
	defer stop()

	served := make(chan error, 1)
	go func() { served <- serve() }()

	var (
		serveErr error
		returned bool
	)
	select {
	case <-sigCtx.Done():
		log.Info("shutdown signal received")
	case serveErr = <-served:
		returned = true
		if serveErr != nil {
			log.Error("server exited", "err", serveErr)
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	failed := false
	for _, t := range targets {
		if err := t.Shutdown(stopCtx); err != nil {
			failed = true
			log.Warn("graceful shutdown step failed", "err", err)
		}
	}

	if !returned {
		select {
		case serveErr = <-served:
		case <-stopCtx.Done():
			log.Warn("server did not return before the shutdown timeout")
		}
	}

	if failed {
		log.Warn("graceful shutdown completed with errors")
	} else {
		log.Info("graceful shutdown completed")
	}
	return serveErr
}
