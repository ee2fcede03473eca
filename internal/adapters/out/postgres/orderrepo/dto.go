package orderrepo

import (
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order persistence.
// Maps domain Order aggregates to relational database format, with line
// items stored in a separate table and loaded as a GORM association.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName string
	Status       int
	Total        float64
	CreatedAt    time.Time
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for GORM.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the database.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID string
	Color     string
	Size      string
	Quantity  int
}

// TableName specifies the database table name for GORM.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts a domain Order aggregate to its database representation.
// Line item rows get fresh surrogate keys; items are value objects in the
// domain model and carry no identity of their own.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:        uuid.New(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID(),
			Color:     item.Color(),
			Size:      item.Size(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Status:       int(aggregate.Status()),
		Total:        aggregate.Total(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        itemDTOs,
	}
}

// toDomain reconstructs a domain Order aggregate from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(itemDTO.ProductID, itemDTO.Color, itemDTO.Size, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		order.Status(dto.Status),
		dto.Total,
		dto.CreatedAt,
		items,
	)
}
