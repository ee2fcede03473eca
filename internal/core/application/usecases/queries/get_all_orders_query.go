// Package queries contains read-only operations over the current store state.
// Implements the Query side of the CQRS architecture: handlers read raw SQL
// straight off the database connection, bypassing the domain aggregates, and
// recompute their results fresh on every call.
package queries

import (
	"errors"
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/order"
	"printstream/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every customer order, newest first.
// Backs the staff order list screen.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order row in the staff order list.
type GetAllOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       order.Status
	Total        float64
	CreatedAt    time.Time
}
