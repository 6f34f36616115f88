package jobs

import (
	"context"
	"log/slog"

	"burritoops/internal/core/application/usecases/commands"
	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderAssignmentJob manages the scheduled assignment of drivers to
// orders. Runs every second: reads pending orders and available drivers,
// pairs them oldest order first, and submits the pairs as one batch. The
// batch handler re-checks each pair, so a plan going stale between read
// and execution surfaces as report skips, not failures.
type OrderAssignmentJob struct {
	orders  ports.OrderStore
	drivers ports.DriverStore
	handler commands.AssignOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAssignmentJob creates a new job for assigning drivers.
// Uses AssignOrdersCommandHandler to process the planned batch every second.
func NewOrderAssignmentJob(
	orders ports.OrderStore,
	drivers ports.DriverStore,
	handler commands.AssignOrdersCommandHandler,
	logger *slog.Logger,
) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		orders:  orders,
		drivers: drivers,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_assignment_job"),
	}
}

// Start begins the order assignment job to run every second.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order assignment job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started (running every second)")
	return nil
}

// Stop stops the order assignment job.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}

func (j *OrderAssignmentJob) run(ctx context.Context) error {
	actions, err := j.plan(ctx)
	if err != nil {
		return err
	}
	if len(actions) == 0 {
		return nil
	}

	cmd, err := commands.NewAssignOrdersCommand(actions)
	if err != nil {
		return err
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Assignment batch executed",
		"workflow_id", report.WorkflowID,
		"proposed", report.TotalProposed,
		"applied", report.TotalApplied,
		"skipped", len(report.Skips))
	return nil
}

// plan pairs pending orders with available drivers, oldest order first.
// The order store lists newest first, so the pending list is walked from
// the tail.
func (j *OrderAssignmentJob) plan(ctx context.Context) ([]commands.AssignmentAction, error) {
	pending := order.Pending
	pendingOrders, err := j.orders.List(ctx, ports.OrderFilter{Status: &pending})
	if err != nil {
		return nil, err
	}
	if len(pendingOrders) == 0 {
		return nil, nil
	}

	available := driver.Available
	freeDrivers, err := j.drivers.List(ctx, ports.DriverFilter{Status: &available})
	if err != nil {
		return nil, err
	}
	if len(freeDrivers) == 0 {
		return nil, nil
	}

	pairs := len(pendingOrders)
	if len(freeDrivers) < pairs {
		pairs = len(freeDrivers)
	}

	actions := make([]commands.AssignmentAction, 0, pairs)
	for i := 0; i < pairs; i++ {
		oldest := pendingOrders[len(pendingOrders)-1-i]
		action, actionErr := commands.NewAssignmentAction(
			oldest.ID(), freeDrivers[i].ID(), order.Pending,
		)
		if actionErr != nil {
			return nil, actionErr
		}
		actions = append(actions, action)
	}

	return actions, nil
}
