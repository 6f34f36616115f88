package commands

import (
	"context"
	"errors"
	"log/slog"

	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/core/domain/services"
	"burritoops/internal/core/ports"
	"burritoops/internal/pkg/errs"
)

// ProgressOrdersCommandHandler executes a batch of order status moves with
// optimistic concurrency: each action re-reads its order and is skipped,
// never failed, when the observed status no longer matches the plan or the
// proposed move is off the lifecycle graph.
//
// Completing a delivery triggers the driver-release rule: the busy driver
// bound to the order is moved back to available. The order move is the
// primary effect; a failed release is logged and does not undo it.
type ProgressOrdersCommandHandler struct {
	orders  ports.OrderStore
	drivers ports.DriverStore
	policy  services.TransitionPolicy
	logger  *slog.Logger
}

// NewProgressOrdersCommandHandler creates a handler for batch order
// progression.
func NewProgressOrdersCommandHandler(
	orders ports.OrderStore,
	drivers ports.DriverStore,
	logger *slog.Logger,
) ProgressOrdersCommandHandler {
	return ProgressOrdersCommandHandler{
		orders:  orders,
		drivers: drivers,
		policy:  services.NewTransitionPolicy(),
		logger:  logger.With("component", "progress_orders"),
	}
}

// Handle applies each progression in submission order and returns the
// execution report. The returned error covers command validation only;
// per-action problems are skips inside the report.
func (h ProgressOrdersCommandHandler) Handle(
	ctx context.Context, cmd ProgressOrdersCommand,
) (ExecutionReport, error) {
	if err := cmd.Validate(); err != nil {
		return ExecutionReport{}, err
	}

	actions := cmd.Actions()
	report := newExecutionReport(len(actions))

	for _, action := range actions {
		h.apply(ctx, action, &report)
	}

	report.complete()
	return report, nil
}

func (h ProgressOrdersCommandHandler) apply(
	ctx context.Context, action ProgressionAction, report *ExecutionReport,
) {
	actionID := action.OrderID().String()

	ord, err := h.orders.Get(ctx, action.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		report.recordSkip(actionID, SkipOrderNotFound, action.OrderID().String())
		return
	}
	if err != nil {
		report.recordSkip(actionID, SkipStoreFailure, err.Error())
		return
	}

	if ord.Status() != action.Expected() {
		h.logger.Warn("progression plan went stale",
			"order_id", actionID,
			"expected_status", action.Expected().String(),
			"observed_status", ord.Status().String())
		report.recordSkip(actionID, SkipStatusMismatch, ord.Status().String())
		return
	}

	if !h.policy.IsLegalTransition(ord.Status(), action.Next()) {
		report.recordSkip(actionID, SkipIllegalTransition,
			ord.Status().String()+" -> "+action.Next().String())
		return
	}

	next := action.Next()
	updated, err := h.orders.Update(ctx, action.OrderID(), order.UpdateRequest{
		Status: &next,
	})
	if err != nil {
		report.recordSkip(actionID, SkipStoreFailure, err.Error())
		return
	}

	if next == order.Delivered {
		h.releaseDriver(ctx, updated, next)
	}

	h.logger.Info("order progressed",
		"order_id", actionID,
		"status", next.String())
	report.recordApplied(actionID)
}

// releaseDriver frees the busy driver bound to a just-delivered order.
// The order move already succeeded, so failures here are logged rather
// than reported as skips.
func (h ProgressOrdersCommandHandler) releaseDriver(
	ctx context.Context, ord *order.Order, next order.Status,
) {
	if ord.AssignedDriverID() == nil {
		return
	}

	drv, err := h.drivers.Get(ctx, *ord.AssignedDriverID())
	if err != nil {
		h.logger.Warn("driver lookup failed on delivery completion",
			"order_id", ord.ID().String(),
			"driver_id", ord.AssignedDriverID().String(),
			"error", err)
		return
	}

	if !h.policy.ShouldReleaseDriver(ord, next, drv) {
		return
	}

	available := driver.Available
	if _, err = h.drivers.Update(ctx, drv.ID(), driver.UpdateRequest{
		Status: &available,
	}); err != nil {
		h.logger.Warn("driver release failed on delivery completion",
			"order_id", ord.ID().String(),
			"driver_id", drv.ID().String(),
			"error", err)
		return
	}

	h.logger.Info("driver released",
		"order_id", ord.ID().String(),
		"driver_id", drv.ID().String())
}
