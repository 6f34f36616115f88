package commands

import (
	"fmt"
	"time"
)

// SkipReason classifies why a batch action was not applied. The values are
// part of the report contract consumed by calling tooling and must stay
// stable.
type SkipReason string

const (
	// SkipOrderNotFound: the action named an order id that is not stored.
	SkipOrderNotFound SkipReason = "order_not_found"

	// SkipDriverNotFound: the action named a driver id that is not stored.
	SkipDriverNotFound SkipReason = "driver_not_found"

	// SkipStatusMismatch: the observed order status differs from the
	// action's expected prior status; the plan was computed from a read
	// that went stale before execution.
	SkipStatusMismatch SkipReason = "status_mismatch"

	// SkipDriverUnavailable: the named driver was not available at the
	// moment of binding.
	SkipDriverUnavailable SkipReason = "driver_unavailable"

	// SkipIllegalTransition: the proposed status move is not on the
	// lifecycle graph.
	SkipIllegalTransition SkipReason = "illegal_transition"

	// SkipStoreFailure: a store write failed while applying the action.
	SkipStoreFailure SkipReason = "store_failure"
)

// AuditEntry records the outcome of one proposed action.
type AuditEntry struct {
	ActionID  string    `json:"action_id"`
	Timestamp time.Time `json:"timestamp"`
	Outcome   string    `json:"outcome"`
}

// SkipRecord explains one skipped action.
type SkipRecord struct {
	ActionID string     `json:"action_id"`
	Reason   SkipReason `json:"reason"`
	Detail   string     `json:"detail,omitempty"`
}

// ExecutionReport is the externally observable result of a batch: how much
// was proposed, how much was applied, and why the rest was skipped. Field
// semantics are a stable contract for calling tooling.
type ExecutionReport struct {
	WorkflowID    string       `json:"workflow_id"`
	StartedAt     time.Time    `json:"started_at"`
	CompletedAt   time.Time    `json:"completed_at"`
	TotalProposed int          `json:"total_proposed"`
	TotalApplied  int          `json:"total_applied"`
	Skips         []SkipRecord `json:"skips"`
	Audit         []AuditEntry `json:"audit"`
}

// newExecutionReport starts a report for a batch of the given size.
func newExecutionReport(totalProposed int) ExecutionReport {
	now := time.Now().UTC()
	return ExecutionReport{
		WorkflowID:    fmt.Sprintf("wf-%d", now.UnixNano()),
		StartedAt:     now,
		TotalProposed: totalProposed,
		Skips:         []SkipRecord{},
		Audit:         []AuditEntry{},
	}
}

func (r *ExecutionReport) recordApplied(actionID string) {
	r.TotalApplied++
	r.Audit = append(r.Audit, AuditEntry{
		ActionID:  actionID,
		Timestamp: time.Now().UTC(),
		Outcome:   "applied",
	})
}

func (r *ExecutionReport) recordSkip(actionID string, reason SkipReason, detail string) {
	r.Skips = append(r.Skips, SkipRecord{ActionID: actionID, Reason: reason, Detail: detail})
	r.Audit = append(r.Audit, AuditEntry{
		ActionID:  actionID,
		Timestamp: time.Now().UTC(),
		Outcome:   "skipped",
	})
}

func (r *ExecutionReport) complete() {
	r.CompletedAt = time.Now().UTC()
}
