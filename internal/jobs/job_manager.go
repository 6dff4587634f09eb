package jobs

import (
	"fmt"
	"log/slog"

	"atelier/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	commissionReminderJob *CommissionReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	unpaidOrdersHandler queries.GetUnpaidDeliveredOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		commissionReminderJob: NewCommissionReminderJob(unpaidOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.commissionReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start commission reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.commissionReminderJob.Stop()
}
