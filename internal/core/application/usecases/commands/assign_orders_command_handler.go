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

// AssignOrdersCommandHandler executes a batch of driver assignments with
// optimistic concurrency: every action re-reads its order and driver and
// is skipped, never failed, when the observed state no longer matches the
// plan. A skipped action is recorded in the report and execution moves on
// to the next action.
//
// Binding is two writes (order then driver) without a surrounding
// transaction. If the driver write fails the order is left confirmed with
// the driver id bound while the driver stays available; the action is
// reported as skipped with a store_failure reason so calling tooling can
// reconcile.
//
// Example:
//
//	handler := NewAssignOrdersCommandHandler(orders, drivers, logger)
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("applied %d of %d", report.TotalApplied, report.TotalProposed)
type AssignOrdersCommandHandler struct {
	orders  ports.OrderStore
	drivers ports.DriverStore
	policy  services.TransitionPolicy
	logger  *slog.Logger
}

// NewAssignOrdersCommandHandler creates a handler for batch driver
// assignment.
func NewAssignOrdersCommandHandler(
	orders ports.OrderStore,
	drivers ports.DriverStore,
	logger *slog.Logger,
) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		orders:  orders,
		drivers: drivers,
		policy:  services.NewTransitionPolicy(),
		logger:  logger.With("component", "assign_orders"),
	}
}

// Handle applies each assignment in submission order and returns the
// execution report. The returned error covers command validation only;
// per-action problems are skips inside the report.
func (h AssignOrdersCommandHandler) Handle(
	ctx context.Context, cmd AssignOrdersCommand,
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

func (h AssignOrdersCommandHandler) apply(
	ctx context.Context, action AssignmentAction, report *ExecutionReport,
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

	if ord.Status() != action.ExpectedStatus() {
		h.logger.Warn("assignment plan went stale",
			"order_id", actionID,
			"expected_status", action.ExpectedStatus().String(),
			"observed_status", ord.Status().String())
		report.recordSkip(actionID, SkipStatusMismatch, ord.Status().String())
		return
	}

	drv, err := h.drivers.Get(ctx, action.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		report.recordSkip(actionID, SkipDriverNotFound, action.DriverID().String())
		return
	}
	if err != nil {
		report.recordSkip(actionID, SkipStoreFailure, err.Error())
		return
	}

	if !h.policy.CanAssign(ord, drv) {
		report.recordSkip(actionID, SkipDriverUnavailable, drv.Status().String())
		return
	}

	confirmed := order.Confirmed
	driverID := action.DriverID()
	if _, err = h.orders.Update(ctx, action.OrderID(), order.UpdateRequest{
		Status:           &confirmed,
		AssignedDriverID: &driverID,
	}); err != nil {
		report.recordSkip(actionID, SkipStoreFailure, err.Error())
		return
	}

	busy := driver.Busy
	if _, err = h.drivers.Update(ctx, action.DriverID(), driver.UpdateRequest{
		Status: &busy,
	}); err != nil {
		h.logger.Error("driver update failed after order was confirmed",
			"order_id", actionID,
			"driver_id", action.DriverID().String(),
			"error", err)
		report.recordSkip(actionID, SkipStoreFailure, err.Error())
		return
	}

	h.logger.Info("order assigned",
		"order_id", actionID,
		"driver_id", action.DriverID().String())
	report.recordApplied(actionID)
}
