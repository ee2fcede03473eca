package commands

import (
	"context"
)

// ChangeWorkOrderStatusCommandHandler handles staff-driven production status
// changes.
//
// Transitions are single-step and permissive; the handler loads the work
// order, applies the new status, and persists the result. Setting the current
// status again succeeds with no observable change. Concurrent updates to the
// same work order race with last-write-wins semantics.
//
// Example:
//
//	handler := NewChangeWorkOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeWorkOrderStatusCommand(workOrderID, workorder.Completed)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ObjectNotFoundError when the id does not exist
//	    return err
//	}
type ChangeWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewChangeWorkOrderStatusCommandHandler creates a handler for production
// status changes. Requires a WorkOrderUoWFactory for transactional persistence.
func NewChangeWorkOrderStatusCommandHandler(uowFactory WorkOrderUoWFactory) ChangeWorkOrderStatusCommandHandler {
	return ChangeWorkOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns errs.ObjectNotFoundError if the work order does not exist; the
// store is left untouched in that case.
func (h *ChangeWorkOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeWorkOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workOrderRepo := uow.WorkOrderRepository()
	aggregate, err := workOrderRepo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
