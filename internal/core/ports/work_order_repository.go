package ports

import (
	"context"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order aggregates.
// Provides methods for storing, retrieving, and updating production tasks.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	// The work order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	// The work order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no work order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)
}
