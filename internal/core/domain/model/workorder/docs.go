// Package workorder provides domain entities and business logic for production
// tracking in the printstream system. It implements the WorkOrder aggregate
// root and its production status state machine.
//
// The package includes:
//   - WorkOrder: The production-facing task derived from an order item,
//     tracked independently through its production status
//   - Status: The production lifecycle states
//
// Key business rules:
//   - Every work order references exactly one originating order
//   - The subcontract flag is decided once at creation and never recomputed
//   - Status transitions are staff-driven and never auto-advance
//   - Setting the current status again is a no-op
//
// Status transitions are deliberately permissive: any status may be set to
// any other status by an explicit operator action. See the status state
// machine documentation for the intended forward path.
package workorder
