package workorderrepo

import (
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for work order persistence.
// Maps domain WorkOrder aggregates to relational database format. The design
// data URI is a base64 data URI and can be large, hence the text column type.
type WorkOrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	ProductName   string
	ProductColor  string
	ProductSize   string
	DesignDataURI string `gorm:"column:design_data_uri;type:text"`
	Quantity      int
	Status        int
	IsSubcontract bool
	CreatedAt     time.Time
}

// TableName specifies the database table name for GORM.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// fromDomain converts a domain WorkOrder aggregate to its database representation.
func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		ProductName:   aggregate.ProductName(),
		ProductColor:  aggregate.ProductColor(),
		ProductSize:   aggregate.ProductSize(),
		DesignDataURI: aggregate.DesignDataURI(),
		Quantity:      aggregate.Quantity(),
		Status:        int(aggregate.Status()),
		IsSubcontract: aggregate.IsSubcontract(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain reconstructs a domain WorkOrder aggregate from its database representation.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		id,
		orderID,
		dto.ProductName,
		dto.ProductColor,
		dto.ProductSize,
		dto.DesignDataURI,
		dto.Quantity,
		dto.IsSubcontract,
		workorder.Status(dto.Status),
		dto.CreatedAt,
	)
}
