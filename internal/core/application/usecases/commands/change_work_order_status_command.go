package commands

import (
	"errors"

	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"
	"printstream/internal/pkg/guard"
)

var (
	ErrChangeWorkOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeWorkOrderStatusCommand must be created via NewChangeWorkOrderStatusCommand constructor",
	)
)

// ChangeWorkOrderStatusCommand represents an operator's request to move a work
// order to a new production status.
//
// Example:
//
//	cmd, err := NewChangeWorkOrderStatusCommand(workOrderID, workorder.InProgress)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewChangeWorkOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type ChangeWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	newStatus   workorder.Status

	guard guard.ConstructorGuard
}

// NewChangeWorkOrderStatusCommand creates a command to change a work order's
// production status. Validates that the work order id and the target status
// are valid. Returns an error if any validation fails.
func NewChangeWorkOrderStatusCommand(
	workOrderID kernel.UUID,
	newStatus workorder.Status,
) (ChangeWorkOrderStatusCommand, error) {
	statusCommand := ChangeWorkOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setWorkOrderID(workOrderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return ChangeWorkOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeWorkOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkOrderStatusCommandIsNotConstructed)
}

// WorkOrderID returns the identifier of the work order to update.
func (c ChangeWorkOrderStatusCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// NewStatus returns the target production status.
func (c ChangeWorkOrderStatusCommand) NewStatus() workorder.Status {
	return c.newStatus
}

func (c *ChangeWorkOrderStatusCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *ChangeWorkOrderStatusCommand) setNewStatus(newStatus workorder.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
