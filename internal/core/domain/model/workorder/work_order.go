package workorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not created
	// through the NewWorkOrder or RestoreWorkOrder factory methods.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")
)

// WorkOrder represents a production task derived from an order item. It is the
// aggregate root that production staff track through the status state machine.
//
// WorkOrder follows these invariants:
//   - Must have a valid unique identifier and a valid originating order id
//   - Product name, color, and size are denormalized from the order item so
//     production staff never need a join
//   - The design payload must be a base64 data URI
//   - Quantity must be positive
//   - The subcontract flag is set at construction and has no setter
//   - Can only be created through NewWorkOrder or RestoreWorkOrder
type WorkOrder struct {
	// id is the unique identifier for the work order
	id kernel.UUID

	// orderID references the originating order (many-to-one, not ownership)
	orderID kernel.UUID

	// productName is the denormalized product name
	productName string

	// productColor is the denormalized garment color
	productColor string

	// productSize is the denormalized garment size
	productSize string

	// designDataURI is the design image as a base64 data URI
	designDataURI string

	// quantity is the number of units to produce (must be positive)
	quantity int

	// isSubcontract routes the item to an external vendor when true.
	// Decided once at creation, immutable thereafter.
	isSubcontract bool

	// status represents the current state in the production lifecycle
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// isConstructed ensures the work order was created via a constructor
	isConstructed bool
}

// NewWorkOrder creates a new WorkOrder instance with validation. The work
// order starts in NeedsProduction status.
//
// Parameters:
//   - id: Unique identifier for the work order (must be valid UUID)
//   - orderID: Identifier of the originating order (must be valid UUID)
//   - productName: Denormalized product name (must be non-empty)
//   - productColor: Denormalized garment color (must be non-empty)
//   - productSize: Denormalized garment size (must be non-empty)
//   - designDataURI: Design image payload (must be a data URI)
//   - quantity: Units to produce (must be positive)
//   - isSubcontract: Whether the item is routed to an external vendor
//
// Returns the created work order if all validations pass, or a validation error.
func NewWorkOrder(
	id kernel.UUID,
	orderID kernel.UUID,
	productName string,
	productColor string,
	productSize string,
	designDataURI string,
	quantity int,
	isSubcontract bool,
) (*WorkOrder, error) {
	workOrder := &WorkOrder{
		status:        NeedsProduction,
		isSubcontract: isSubcontract,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		workOrder.setID(id),
		workOrder.setOrderID(orderID),
		workOrder.setProductName(productName),
		workOrder.setProductColor(productColor),
		workOrder.setProductSize(productSize),
		workOrder.setDesignDataURI(designDataURI),
		workOrder.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return workOrder, nil
}

// RestoreWorkOrder reconstructs a WorkOrder from persistence. All fields are
// still validated.
func RestoreWorkOrder(
	id kernel.UUID,
	orderID kernel.UUID,
	productName string,
	productColor string,
	productSize string,
	designDataURI string,
	quantity int,
	isSubcontract bool,
	status Status,
	createdAt time.Time,
) (*WorkOrder, error) {
	workOrder := &WorkOrder{
		isSubcontract: isSubcontract,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		workOrder.setID(id),
		workOrder.setOrderID(orderID),
		workOrder.setProductName(productName),
		workOrder.setProductColor(productColor),
		workOrder.setProductSize(productSize),
		workOrder.setDesignDataURI(designDataURI),
		workOrder.setQuantity(quantity),
		workOrder.setStatus(status),
	); err != nil {
		return nil, err
	}

	return workOrder, nil
}

// Validate ensures the WorkOrder instance was properly constructed through a
// factory method.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// OrderID returns the identifier of the originating order.
func (w *WorkOrder) OrderID() kernel.UUID {
	return w.orderID
}

// ProductName returns the denormalized product name.
func (w *WorkOrder) ProductName() string {
	return w.productName
}

// ProductColor returns the denormalized garment color.
func (w *WorkOrder) ProductColor() string {
	return w.productColor
}

// ProductSize returns the denormalized garment size.
func (w *WorkOrder) ProductSize() string {
	return w.productSize
}

// DesignDataURI returns the design image payload.
func (w *WorkOrder) DesignDataURI() string {
	return w.designDataURI
}

// Quantity returns the number of units to produce.
func (w *WorkOrder) Quantity() int {
	return w.quantity
}

// IsSubcontract reports whether the item is routed to an external vendor.
func (w *WorkOrder) IsSubcontract() bool {
	return w.isSubcontract
}

// Status returns the current production status.
func (w *WorkOrder) Status() Status {
	return w.status
}

// CreatedAt returns the creation timestamp.
func (w *WorkOrder) CreatedAt() time.Time {
	return w.createdAt
}

// ChangeStatus sets the production status by explicit operator action.
//
// Transitions are single-step and unconditional: any valid status may be set
// from any other. Setting the current status again is a no-op with the same
// observable result, so retried operator actions are safe.
//
// Returns a validation error if newStatus is not a valid status value.
func (w *WorkOrder) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	w.status = newStatus
	return nil
}

// setID validates and sets the work order's unique identifier.
// This is a private method used only during construction.
func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

// setOrderID validates and sets the originating order identifier.
// This is a private method used only during construction.
func (w *WorkOrder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID is invalid", err)
	}
	w.orderID = orderID
	return nil
}

func (w *WorkOrder) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	w.productName = productName
	return nil
}

func (w *WorkOrder) setProductColor(productColor string) error {
	if productColor == "" {
		return errs.NewValueIsRequiredError("productColor")
	}
	w.productColor = productColor
	return nil
}

func (w *WorkOrder) setProductSize(productSize string) error {
	if productSize == "" {
		return errs.NewValueIsRequiredError("productSize")
	}
	w.productSize = productSize
	return nil
}

// setDesignDataURI validates and sets the design payload. The payload is
// stored as-is; only the data URI envelope is checked here.
func (w *WorkOrder) setDesignDataURI(designDataURI string) error {
	if designDataURI == "" {
		return errs.NewValueIsRequiredError("designDataURI")
	}
	if !strings.HasPrefix(designDataURI, "data:") {
		return errs.NewValueIsInvalidErrorWithCause(
			"designDataURI is invalid",
			errors.New("payload is not a data URI"),
		)
	}
	w.designDataURI = designDataURI
	return nil
}

func (w *WorkOrder) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	w.quantity = quantity
	return nil
}

// setStatus validates and sets the production status.
// This is a private method used only during restoration.
func (w *WorkOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	w.status = status
	return nil
}
