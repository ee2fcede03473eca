// Package ports defines repository and collaborator interfaces for the
// printstream domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written together with their items; the store persists the whole
// aggregate or nothing.
type OrderRepository interface {
	// Add persists a new order aggregate with its items to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
