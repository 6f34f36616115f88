// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: a constructor-guarded command
// struct, a handler holding the stores it needs, and a Handle method that
// validates the command before touching storage.
//
// The batch commands (AssignOrders, ProgressOrders) implement the
// orchestration contract: each proposed action is checked against a fresh
// read of its target, applied independently, and recorded in an
// ExecutionReport. A batch always completes and reports what it could not
// do; per-item problems become skips, never hard failures.
package commands
