package queries

import (
	"context"
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllWorkOrdersQueryHandler retrieves work order information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWorkOrdersQueryHandler creates a handler for work order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllWorkOrdersQueryHandler(db *gorm.DB) GetAllWorkOrdersQueryHandler {
	return GetAllWorkOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all work orders, oldest first.
func (h GetAllWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkOrdersQuery,
) ([]GetAllWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workOrders := make([]GetAllWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			product_color,
			product_size,
			design_data_uri,
			quantity,
			status,
			is_subcontract,
			created_at
		FROM work_orders
		ORDER BY created_at ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllWorkOrdersQueryResponse
		var id, orderID uuid.UUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&resp.ProductName,
			&resp.ProductColor,
			&resp.ProductSize,
			&resp.DesignDataURI,
			&resp.Quantity,
			&status,
			&resp.IsSubcontract,
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
		workOrders = append(workOrders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workOrders, nil
}
