// Package order contains the Order aggregate, its line items, and the
// lifecycle status state machine.
//
// An order snapshots its customer and every ordered menu item at creation
// time, so later edits to customers or the menu never change what a
// historical order says was bought and for how much. The total amount is
// derived once at creation and never silently recomputed.
//
// Status moves one forward step at a time along the delivery chain, with
// cancellation available from any non-terminal state; CanTransitionTo is
// the single source of truth for legality.
package order
