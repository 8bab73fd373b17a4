package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Scheduler refreshes a session on a cron spec, e.g. "@every 30m".
// Overlapping runs are harmless since only the latest refresh is applied.
type Scheduler struct {
	cron    *cron.Cron
	session *Session
	spec    string
	logger  *logging.Logger

	// first tracks the refresh fired by Start, which cron does not own
	first sync.WaitGroup
}

func NewScheduler(s *Session, spec string, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("scheduler")

	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cronLogger{logger})),
		session: s,
		spec:    spec,
		logger:  logger,
	}
}

// Start registers the refresh job, starts the cron loop and runs one
// refresh immediately.
func (sc *Scheduler) Start(ctx context.Context) error {
	if _, err := sc.cron.AddFunc(sc.spec, func() { sc.run(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	sc.cron.Start()
	sc.logger.Info("scheduler started", "spec", sc.spec)

	sc.first.Add(1)
	go func() {
		defer sc.first.Done()
		sc.run(ctx)
	}()
	return nil
}

// Shutdown stops the cron loop and waits for every running refresh,
// including the one started by Start.
func (sc *Scheduler) Shutdown(ctx context.Context) error {
	cronDone := sc.cron.Stop()

	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		sc.first.Wait()
		close(done)
	}()

	select {
	case <-done:
		sc.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (sc *Scheduler) run(ctx context.Context) {
	res := sc.session.Refresh(ctx)
	sc.logger.Debug("scheduled refresh", "seq", res.Seq, "status", res.Status, "count", res.Count)
}

// cronLogger adapts logging.Logger to cron.Logger
type cronLogger struct {
	l *logging.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, append(keysAndValues, "err", err)...)
}
