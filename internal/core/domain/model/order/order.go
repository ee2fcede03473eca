package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer purchase in the system. It is the aggregate root
// that owns the order's items and manages the order lifecycle from placement
// onward.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty customer name
//   - Total must be a finite, non-negative amount
//   - Items are added at creation time and are immutable afterwards
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName identifies the customer who placed the order
	customerName string

	// status represents the current state in the order lifecycle
	status Status

	// total is the order total price
	total float64

	// createdAt is the placement timestamp
	createdAt time.Time

	// items are the product lines owned by this order
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Pending status with no items; add lines with AddItem before persisting.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerName: Name of the purchasing customer (must be non-empty)
//   - total: Order total price (must be finite and non-negative)
//
// Returns the created order if all validations pass, or a validation error.
func NewOrder(id kernel.UUID, customerName string, total float64) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setTotal(total),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation defaults. All fields are still validated.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	status Status,
	total float64,
	createdAt time.Time,
	items []Item,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		items:         items,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setStatus(status),
		order.setTotal(total),
	); err != nil {
		return nil, err
	}

	for _, item := range order.items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total price.
func (o *Order) Total() float64 {
	return o.total
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order's product lines.
// The copy keeps the aggregate's internal state immutable from the outside.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a product line to the order.
//
// Items may only be added before the order is persisted; they are immutable
// afterwards. Item creation and order creation share one atomic unit of work
// in the intake flow, so a persisted order never gains or loses lines.
func (o *Order) AddItem(productID, color, size string, quantity int) error {
	item, err := NewItem(productID, color, size, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerName validates and sets the purchasing customer's name.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

// setStatus validates and sets the order status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setTotal validates and sets the order total.
// Total must be finite and non-negative.
// This is a private method used only during construction.
func (o *Order) setTotal(total float64) error {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%f is not a finite number", total))
	}
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%f is negative", total))
	}
	o.total = total
	return nil
}
