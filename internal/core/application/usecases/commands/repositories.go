// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"printstream/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WorkOrderRepoFactory provides access to the work order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// IntakeUoW manages the order intake transaction. The Order, its items,
	// and the derived WorkOrder must commit as one unit, so intake needs both
	// repositories on the same transaction.
	IntakeUoW interface {
		TxManager
		OrderRepoFactory
		WorkOrderRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// WorkOrderUoW manages transactions for work-order-only operations.
	// Used when commands only modify work order aggregates.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}
)
