// Package driver contains the Driver entity and its availability status.
//
// A driver cycles between three states as the order lifecycle touches it:
//
//	available ──assign──> busy ──order delivered──> available
//	available <──────> offline (manual roster changes)
//
// The status value itself does not restrict which moves are legal; the
// assignment orchestrator enforces that only available drivers are bound
// to orders and that delivery releases a busy driver.
package driver
