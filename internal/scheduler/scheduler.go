package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultJobTimeout = 5 * time.Minute

// Roller advances overdue payment dates
type Roller interface {
	RollOverdue(ctx context.Context) (int, error)
}

// Purger drops expired sessions
type Purger interface {
	PurgeSessions(ctx context.Context) (int64, error)
}

// Scheduler runs the maintenance jobs on cron specs
type Scheduler struct {
	cron       *cron.Cron
	roller     Roller
	purger     Purger
	log        *slog.Logger
	rollSpec   string
	purgeSpec  string
	jobTimeout time.Duration
}

func New(roller Roller, purger Purger, log *slog.Logger, rollSpec, purgeSpec string) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.Local)),
		roller:     roller,
		purger:     purger,
		log:        log,
		rollSpec:   rollSpec,
		purgeSpec:  purgeSpec,
		jobTimeout: defaultJobTimeout,
	}
}

// Start registers the jobs and starts the cron engine in its own goroutine.
// An empty spec disables the job.
func (s *Scheduler) Start() error {
	if s.rollSpec != "" {
		if _, err := s.cron.AddFunc(s.rollSpec, func() { s.roll(context.Background()) }); err != nil {
			return fmt.Errorf("add roll job %q: %w", s.rollSpec, err)
		}
	}
	if s.purgeSpec != "" && s.purger != nil {
		if _, err := s.cron.AddFunc(s.purgeSpec, func() { s.purge(context.Background()) }); err != nil {
			return fmt.Errorf("add purge job %q: %w", s.purgeSpec, err)
		}
	}
	s.cron.Start()
	s.log.Info("scheduler started",
		slog.String("roll_spec", s.rollSpec),
		slog.String("purge_spec", s.purgeSpec),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// RunOnce runs every job synchronously, used at startup
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.roll(ctx)
	if s.purger != nil {
		s.purge(ctx)
	}
}

// Stop waits for running jobs to finish
func (s *Scheduler) Stop() {
	s.log.Info("stopping scheduler")
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) roll(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, s.jobTimeout)
	defer cancel()

	start := time.Now()
	moved, err := s.roller.RollOverdue(ctx)
	if err != nil {
		s.log.Error("roll overdue payments", slog.Int("moved", moved), slog.String("error", err.Error()))
		return
	}
	s.log.Info("roll overdue payments", slog.Int("moved", moved), slog.Duration("took", time.Since(start)))
}

func (s *Scheduler) purge(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, s.jobTimeout)
	defer cancel()

	n, err := s.purger.PurgeSessions(ctx)
	if err != nil {
		s.log.Error("purge expired sessions", slog.String("error", err.Error()))
		return
	}
	s.log.Debug("purge expired sessions", slog.Int64("deleted", n))
}
