package queries

import (
	"errors"
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"
	"printstream/internal/pkg/guard"
)

var (
	ErrGetSubcontractWorklistQueryIsNotConstructed = errors.New(
		"GetSubcontractWorklistQuery must be created via NewGetSubcontractWorklistQuery constructor",
	)
)

// GetSubcontractWorklistQuery retrieves the work orders routed to external
// vendors that still need action: every subcontracted item whose status is
// neither Completed nor Canceled. Staff use the list to raise purchase orders
// per item.
type GetSubcontractWorklistQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSubcontractWorklistQuery creates a query to retrieve the subcontract
// worklist. This is a parameterless query.
func NewGetSubcontractWorklistQuery() GetSubcontractWorklistQuery {
	return GetSubcontractWorklistQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSubcontractWorklistQueryIsNotConstructed if validation fails.
func (q GetSubcontractWorklistQuery) Validate() error {
	return q.guard.Validate(ErrGetSubcontractWorklistQueryIsNotConstructed)
}

// GetSubcontractWorklistQueryResponse represents one open subcontracted item.
type GetSubcontractWorklistQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	ProductName  string
	ProductColor string
	ProductSize  string
	Quantity     int
	Status       workorder.Status
	CreatedAt    time.Time
}
