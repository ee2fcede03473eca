package queries

import (
	"errors"

	"printstream/internal/pkg/guard"
)

var (
	ErrGetMaterialRequirementsQueryIsNotConstructed = errors.New(
		"GetMaterialRequirementsQuery must be created via NewGetMaterialRequirementsQuery constructor",
	)
)

// GetMaterialRequirementsQuery computes what the in-house production queue
// needs, grouped by product and size.
//
// Only work orders in NeedsProduction that are not subcontracted count toward
// the requirement; subcontracted items consume the vendor's materials, not
// ours. The result is recomputed from the live work order set on every read —
// there is no persisted cache to invalidate.
type GetMaterialRequirementsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMaterialRequirementsQuery creates a query to compute material
// requirements. This is a parameterless query.
func NewGetMaterialRequirementsQuery() GetMaterialRequirementsQuery {
	return GetMaterialRequirementsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMaterialRequirementsQueryIsNotConstructed if validation fails.
func (q GetMaterialRequirementsQuery) Validate() error {
	return q.guard.Validate(ErrGetMaterialRequirementsQueryIsNotConstructed)
}

// GetMaterialRequirementsQueryResponse is one (product, size) group with the
// total units awaiting in-house production.
type GetMaterialRequirementsQueryResponse struct {
	ProductName   string
	ProductSize   string
	TotalQuantity int
}
