package queries

import (
	"context"
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSubcontractWorklistQueryHandler retrieves the open subcontracted items
// from the database. Completed and Canceled items stay out of the list even
// though they keep their subcontract flag.
type GetSubcontractWorklistQueryHandler struct {
	db *gorm.DB
}

// NewGetSubcontractWorklistQueryHandler creates a handler for subcontract
// worklist queries. Requires a GORM database connection.
func NewGetSubcontractWorklistQueryHandler(db *gorm.DB) GetSubcontractWorklistQueryHandler {
	return GetSubcontractWorklistQueryHandler{db: db}
}

// Handle executes the query over the live work order set, oldest first.
func (h GetSubcontractWorklistQueryHandler) Handle(
	ctx context.Context,
	query GetSubcontractWorklistQuery,
) ([]GetSubcontractWorklistQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	worklist := make([]GetSubcontractWorklistQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			product_color,
			product_size,
			quantity,
			status,
			created_at
		FROM work_orders
		WHERE is_subcontract = TRUE
		  AND status NOT IN (?, ?)
		ORDER BY created_at ASC
	`, workorder.Completed, workorder.Canceled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSubcontractWorklistQueryResponse
		var id, orderID uuid.UUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&resp.ProductName,
			&resp.ProductColor,
			&resp.ProductSize,
			&resp.Quantity,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		workOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		originID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = workOrderID
		resp.OrderID = originID
		resp.Status = workorder.Status(status)
		resp.CreatedAt = createdAt
		worklist = append(worklist, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return worklist, nil
}
