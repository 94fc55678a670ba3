package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a job on a fixed-delay cron schedule. A run that is still
// in progress when the next one is due causes that one to be skipped.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
}

// New creates a scheduler. Skipped runs are logged to logger.
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger}))),
	}
}

// Every runs job immediately, then every d until ctx is done. It returns
// ctx.Err() once the scheduler has stopped and no job is running.
func (s *Scheduler) Every(ctx context.Context, d time.Duration, job func(context.Context)) error {
	if err := s.schedule(d, func() { job(ctx) }); err != nil {
		return err
	}

	job(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return ctx.Err()
}

// NextRun returns the time of the next scheduled run, or the zero time
// before the schedule has started.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	id := s.entryID
	s.mu.Unlock()

	if id == 0 {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

func (s *Scheduler) schedule(d time.Duration, fn func()) error {
	if d < time.Second {
		return fmt.Errorf("interval %s is shorter than 1s", d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace the previous job, if any
	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
		s.entryID = 0
	}

	id, err := s.cron.AddFunc(buildCronSpec(d), fn)
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}
	s.entryID = id
	return nil
}

func buildCronSpec(d time.Duration) string {
	// Descriptor format: @every <duration>, whole seconds
	return fmt.Sprintf("@every %s", d.Truncate(time.Second))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("scheduler: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("scheduler: "+msg, append(keysAndValues, "error", err)...)
}
