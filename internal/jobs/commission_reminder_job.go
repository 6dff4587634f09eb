package jobs

import (
	"context"
	"log/slog"

	"atelier/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CommissionReminderJob periodically reports delivered orders whose sales
// commission is still owed. Runs hourly; the reminder is a structured log
// entry per owed order, oldest delivery first.
type CommissionReminderJob struct {
	handler queries.GetUnpaidDeliveredOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCommissionReminderJob creates a new job for commission reminders.
func NewCommissionReminderJob(
	handler queries.GetUnpaidDeliveredOrdersQueryHandler,
	logger *slog.Logger,
) *CommissionReminderJob {
	return &CommissionReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "commission_reminder_job"),
	}
}

// Start begins the commission reminder job to run at the top of every hour.
func (j *CommissionReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Commission reminder job started (running hourly)")
	return nil
}

// Stop stops the commission reminder job.
func (j *CommissionReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Commission reminder job stopped")
}

func (j *CommissionReminderJob) run() {
	ctx := context.Background()

	owed, err := j.handler.Handle(ctx, queries.NewGetUnpaidDeliveredOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Commission reminder job failed", "error", err)
		return
	}

	// No owed commissions is the expected steady state.
	if len(owed) == 0 {
		return
	}

	for _, row := range owed {
		j.logger.InfoContext(ctx, "commission payment outstanding",
			"order_id", row.ID.String(),
			"sales_rep_id", row.SalesRepID.String(),
			"commission_due", row.CommissionDue.String(),
			"delivered_at", row.DeliveredAt,
		)
	}
}
