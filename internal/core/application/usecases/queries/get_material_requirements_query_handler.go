package queries

import (
	"context"

	"printstream/internal/core/domain/model/workorder"

	"gorm.io/gorm"
)

// GetMaterialRequirementsQueryHandler aggregates pending in-house production
// into per-(product, size) material totals.
//
// Example:
//
//	handler := NewGetMaterialRequirementsQueryHandler(db)
//	query := NewGetMaterialRequirementsQuery()
//
//	requirements, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute material requirements: %w", err)
//	}
//
//	for _, req := range requirements {
//	    fmt.Printf("%s / %s: %d units\n", req.ProductName, req.ProductSize, req.TotalQuantity)
//	}
type GetMaterialRequirementsQueryHandler struct {
	db *gorm.DB
}

// NewGetMaterialRequirementsQueryHandler creates a handler for material
// requirement queries. Requires a GORM database connection.
func NewGetMaterialRequirementsQueryHandler(db *gorm.DB) GetMaterialRequirementsQueryHandler {
	return GetMaterialRequirementsQueryHandler{db: db}
}

// Handle executes the aggregation over the live work order set.
// Groups NeedsProduction, non-subcontracted work orders by (productName,
// productSize) and sums their quantities. Group order is not significant.
func (h GetMaterialRequirementsQueryHandler) Handle(
	ctx context.Context,
	query GetMaterialRequirementsQuery,
) ([]GetMaterialRequirementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requirements := make([]GetMaterialRequirementsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			product_size,
			SUM(quantity) AS total_quantity
		FROM work_orders
		WHERE status = ?
		  AND is_subcontract = FALSE
		GROUP BY product_name, product_size
	`, workorder.NeedsProduction).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var req GetMaterialRequirementsQueryResponse

		err = rows.Scan(
			&req.ProductName,
			&req.ProductSize,
			&req.TotalQuantity,
		)
		if err != nil {
			return nil, err
		}

		requirements = append(requirements, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requirements, nil
}
