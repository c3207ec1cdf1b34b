package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/platform/config"
)

// jobTimeout bounds a single pipeline pass. Passes iterate accounts
// serially, so the bound is generous.
const jobTimeout = 30 * time.Minute

// Scheduler drives the recurring pipeline passes. Each pass is skipped while
// its previous run is still going, so a slow provider never stacks runs.
type Scheduler struct {
	cron   *cron.Cron
	sync   portssvc.SyncSvc
	logger *slog.Logger
}

// NewScheduler wires the four pipeline passes onto the configured schedule.
func NewScheduler(cfg *config.Config, sync portssvc.SyncSvc, logger *slog.Logger) (*Scheduler, error) {
	cronLogger := cron.PrintfLogger(slogPrintf{logger})
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cronLogger),
		cron.Recover(cronLogger),
	))

	s := &Scheduler{cron: c, sync: sync, logger: logger}

	passes := []struct {
		name string
		run  func(context.Context) error
	}{
		{"account_sync", sync.SyncAccounts},
		{"contact_collection", sync.CollectContacts},
		{"contact_qualification", sync.QualifyContacts},
		{"record_upload", sync.Upload},
	}
	for _, pass := range passes {
		if _, err := c.AddFunc(cfg.JobSchedule, s.wrap(pass.name, pass.run)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// wrap gives each pass its own timeout and logs the outcome.
func (s *Scheduler) wrap(name string, run func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		started := time.Now()
		s.logger.Info("Job started", slog.String("job", name))
		if err := run(ctx); err != nil {
			s.logger.Error("Job failed",
				slog.String("job", name),
				slog.String("error", err.Error()),
				slog.Duration("elapsed", time.Since(started)))
			return
		}
		s.logger.Info("Job finished",
			slog.String("job", name),
			slog.Duration("elapsed", time.Since(started)))
	}
}

// Start launches the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for any running pass to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// slogPrintf adapts slog to cron's printf-style logger.
type slogPrintf struct {
	logger *slog.Logger
}

func (l slogPrintf) Printf(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}
