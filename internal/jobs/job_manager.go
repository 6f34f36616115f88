package jobs

import (
	"fmt"
	"log/slog"

	"burritoops/internal/core/application/usecases/commands"
	"burritoops/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAssignmentJob  *OrderAssignmentJob
	deliveryTrackingJob *DeliveryTrackingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the stores and command handlers as dependencies to wire up job
// execution.
func NewJobManager(
	orders ports.OrderStore,
	drivers ports.DriverStore,
	assignHandler commands.AssignOrdersCommandHandler,
	progressHandler commands.ProgressOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderAssignmentJob:  NewOrderAssignmentJob(orders, drivers, assignHandler, logger),
		deliveryTrackingJob: NewDeliveryTrackingJob(orders, progressHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start order assignment job: %w", err)
	}

	if err := jm.deliveryTrackingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderAssignmentJob.Stop()
		return fmt.Errorf("failed to start delivery tracking job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryTrackingJob.Stop()
	jm.orderAssignmentJob.Stop()
}
