package commands_test

import (
	"errors"
	"testing"

	"printstream/internal/core/application/usecases/commands"
	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"
	"printstream/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	w, err := workorder.NewWorkOrder(
		kernel.NewUUID(), kernel.NewUUID(), "T-Shirt", "White", "M", testDesignURI, 1, false,
	)
	require.NoError(t, err)
	return w
}

func TestChangeWorkOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredWorkOrder(t)
	cmd, err := commands.NewChangeWorkOrderStatusCommand(stored.ID(), workorder.InProgress)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, workorder.InProgress, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeWorkOrderStatusCommandHandler_Handle_SameStatusIsIdempotent(t *testing.T) {
	ctx := t.Context()
	stored := newStoredWorkOrder(t)
	cmd, err := commands.NewChangeWorkOrderStatusCommand(stored.ID(), workorder.NeedsProduction)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, stored).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, workorder.NeedsProduction, stored.Status())
}

func TestChangeWorkOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeWorkOrderStatusCommand{} // not constructed properly
	factory := new(MockWorkOrderUoWFactory)

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeWorkOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewChangeWorkOrderStatusCommand(missingID, workorder.Completed)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("work order", missingID.String())

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, missingID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeWorkOrderStatusCommandHandler_Handle_UpdateError_RollsBack(t *testing.T) {
	ctx := t.Context()
	stored := newStoredWorkOrder(t)
	cmd, err := commands.NewChangeWorkOrderStatusCommand(stored.ID(), workorder.Canceled)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeWorkOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
