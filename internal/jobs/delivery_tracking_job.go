package jobs

import (
	"context"
	"log/slog"

	"burritoops/internal/core/application/usecases/commands"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// trackedStatuses are the states the tracking job advances, each one step
// closer to delivered.
var trackedStatuses = []order.Status{
	order.Confirmed,
	order.Preparing,
	order.Ready,
	order.OutForDelivery,
}

// DeliveryTrackingJob manages the scheduled progression of active orders.
// Runs every thirty seconds, moving each confirmed, preparing, ready, or
// out-for-delivery order one lifecycle step forward. Completed deliveries
// release their busy drivers through the batch handler.
type DeliveryTrackingJob struct {
	orders  ports.OrderStore
	handler commands.ProgressOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryTrackingJob creates a new job for advancing active orders.
// Uses ProgressOrdersCommandHandler to process the planned batch.
func NewDeliveryTrackingJob(
	orders ports.OrderStore,
	handler commands.ProgressOrdersCommandHandler,
	logger *slog.Logger,
) *DeliveryTrackingJob {
	return &DeliveryTrackingJob{
		orders:  orders,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_tracking_job"),
	}
}

// Start begins the delivery tracking job to run every thirty seconds.
func (j *DeliveryTrackingJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery tracking job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery tracking job started (running every 30 seconds)")
	return nil
}

// Stop stops the delivery tracking job.
func (j *DeliveryTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery tracking job stopped")
}

func (j *DeliveryTrackingJob) run(ctx context.Context) error {
	actions, err := j.plan(ctx)
	if err != nil {
		return err
	}
	if len(actions) == 0 {
		return nil
	}

	cmd, err := commands.NewProgressOrdersCommand(actions)
	if err != nil {
		return err
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Tracking batch executed",
		"workflow_id", report.WorkflowID,
		"proposed", report.TotalProposed,
		"applied", report.TotalApplied,
		"skipped", len(report.Skips))
	return nil
}

// plan proposes one forward step for every order in a tracked status.
func (j *DeliveryTrackingJob) plan(ctx context.Context) ([]commands.ProgressionAction, error) {
	actions := make([]commands.ProgressionAction, 0)

	for _, status := range trackedStatuses {
		next, ok := status.Next()
		if !ok {
			continue
		}

		matched, err := j.orders.List(ctx, ports.OrderFilter{Status: &status})
		if err != nil {
			return nil, err
		}

		for _, o := range matched {
			action, actionErr := commands.NewProgressionAction(o.ID(), status, next)
			if actionErr != nil {
				return nil, actionErr
			}
			actions = append(actions, action)
		}
	}

	return actions, nil
}
