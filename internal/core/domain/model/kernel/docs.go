// Package kernel contains shared value objects used across the domain model.
// It provides the EntityID identity scheme that every aggregate and entity
// in the system is keyed by.
//
// The kernel package has no dependencies on other domain packages, keeping
// the dependency direction one-way: domain models depend on kernel, never
// the reverse.
package kernel
