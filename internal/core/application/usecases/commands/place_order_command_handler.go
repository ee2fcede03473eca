package commands

import (
	"context"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/order"
	"printstream/internal/core/domain/model/workorder"
	"printstream/internal/core/domain/services"
)

// IntakeDefaults are the configuration defaults stamped onto orders placed
// through the storefront. Customer name and product name are placeholders for
// an absent authentication/catalog integration; representing them as injected
// configuration lets a real integration override them without touching the
// intake logic.
type IntakeDefaults struct {
	// CustomerName is used for every order until auth is integrated.
	CustomerName string

	// ProductName is the denormalized product name on work orders until a
	// catalog lookup exists.
	ProductName string

	// Quantity is the units per order line.
	Quantity int
}

// PlaceOrderCommandHandler handles the business logic for order intake.
//
// Intake creates the Order, its single item, and the derived WorkOrder as one
// atomic unit of work: either all three are committed or none is. A
// half-created order without its work order is never observable by readers.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, services.NewSubcontractPolicy(), defaults)
//	cmd, _ := NewPlaceOrderCommand("tshirt-standard", designURI, "White", "M", 15.00)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	policy     services.SubcontractPolicy
	defaults   IntakeDefaults
}

// NewPlaceOrderCommandHandler creates a handler for order intake operations.
// Requires an IntakeUoWFactory for transactional persistence, the subcontract
// routing policy, and the intake configuration defaults.
func NewPlaceOrderCommandHandler(
	uowFactory IntakeUoWFactory,
	policy services.SubcontractPolicy,
	defaults IntakeDefaults,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		defaults:   defaults,
	}
}

// Handle processes the order intake command and returns the new order's id.
//
// Steps, inside a single transaction:
//  1. Create the Order in Pending status with one item
//  2. Evaluate the subcontract rule on (color, size)
//  3. Create the WorkOrder in NeedsProduction status carrying the design
//     payload and the subcontract flag
//
// Any persistence failure aborts the whole transaction; no partial state is
// left behind.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), h.defaults.CustomerName, cmd.Price())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = newOrder.AddItem(cmd.ProductID(), cmd.Color(), cmd.Size(), h.defaults.Quantity); err != nil {
		return kernel.UUID{}, err
	}

	isSubcontract := h.policy.NeedsSubcontracting(cmd.Color(), cmd.Size())

	newWorkOrder, err := workorder.NewWorkOrder(
		kernel.NewUUID(),
		newOrder.ID(),
		h.defaults.ProductName,
		cmd.Color(),
		cmd.Size(),
		cmd.DesignDataURI(),
		h.defaults.Quantity,
		isSubcontract,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.WorkOrderRepository().Add(ctx, newWorkOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}
