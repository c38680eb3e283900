package scheduler

import (
	"context"

	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/robfig/cron/v3"
)

// ReminderProcessor is the operation the scheduler drives
type ReminderProcessor interface {
	ProcessReminders(ctx context.Context) error
}

// ReminderScheduler invokes the dispatcher on a cron cadence. The due-time
// tolerance is one minute, so the cron expression must fire at least once
// per minute; deployments that trigger the process endpoint from external
// cron run with the scheduler disabled instead.
type ReminderScheduler struct {
	cron      *cron.Cron
	processor ReminderProcessor
	spec      string
	log       *logger.Logger
}

// NewReminderScheduler creates a new reminder scheduler
func NewReminderScheduler(processor ReminderProcessor, spec string, log *logger.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		cron:      cron.New(),
		processor: processor,
		spec:      spec,
		log:       log,
	}
}

// Start registers the dispatch job and starts the cron loop
func (s *ReminderScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.processor.ProcessReminders(context.Background()); err != nil {
			s.log.Error("Scheduled reminder run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Reminder scheduler started", "spec", s.spec)
	return nil
}

// Stop stops the cron loop. In-flight runs finish on their own.
func (s *ReminderScheduler) Stop() {
	s.log.Info("Stopping reminder scheduler")
	s.cron.Stop()
}
