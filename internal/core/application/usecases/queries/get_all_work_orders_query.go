package queries

import (
	"errors"
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"
	"printstream/internal/pkg/guard"
)

var (
	ErrGetAllWorkOrdersQueryIsNotConstructed = errors.New(
		"GetAllWorkOrdersQuery must be created via NewGetAllWorkOrdersQuery constructor",
	)
)

// GetAllWorkOrdersQuery retrieves every production work order, oldest first.
// Backs the production planning screen.
type GetAllWorkOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWorkOrdersQuery creates a query to retrieve all work orders.
// This is a parameterless query.
func NewGetAllWorkOrdersQuery() GetAllWorkOrdersQuery {
	return GetAllWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllWorkOrdersQueryIsNotConstructed if validation fails.
func (q GetAllWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkOrdersQueryIsNotConstructed)
}

// GetAllWorkOrdersQueryResponse represents one work order row on the
// production planning screen.
type GetAllWorkOrdersQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	ProductName   string
	ProductColor  string
	ProductSize   string
	DesignDataURI string
	Quantity      int
	Status        workorder.Status
	IsSubcontract bool
	CreatedAt     time.Time
}
