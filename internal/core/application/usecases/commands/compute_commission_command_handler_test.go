package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newComputeHandler(t *testing.T, factory commands.CommissionUoWFactory) commands.ComputeCommissionCommandHandler {
	t.Helper()
	handler, err := commands.NewComputeCommissionCommandHandler(
		factory, commands.CommissionPolicy{DeliveryRate: 0.05, AssistedPurchaseRate: 0.02})
	require.NoError(t, err)
	return handler
}

func TestComputeCommissionCommandHandler_Handle_CreatesPendingRecord(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	testOrder := testOrderAt(t, order.CollectedByBuyer, courierID, siteID)

	cmd, err := commands.NewComputeCommissionCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	commissionRepo := new(MockCommissionRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CommissionRepository").Return(commissionRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	commissionRepo.On("GetByAgentOrderType", ctx, courierID, testOrder.ID(), commission.TypeDelivery).
		Return(nil, errs.NewObjectNotFoundError("commission", nil))
	commissionRepo.On("Add", ctx, mock.AnythingOfType("*commission.Commission")).Return(nil)
	orderRepo.On("Update", ctx, testOrder).Return(nil)

	factory := new(MockCommissionUoWFactory)
	factory.On("Create").Return(uow)

	handler := newComputeHandler(t, factory)
	record, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commission.StatusPending, record.Status())
	assert.Equal(t, int64(500), record.Amount().Cents())
	assert.InDelta(t, 0.05, record.Rate(), 1e-9)
}

func TestComputeCommissionCommandHandler_Handle_SecondCallReturnsExisting(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	testOrder := testOrderAt(t, order.CollectedByBuyer, courierID, siteID)
	require.NoError(t, testOrder.SetCommissionAmount(testMoney(t, 500)))

	existing, err := commission.NewCommission(
		kernel.NewUUID(), courierID, testOrder.ID(), commission.TypeDelivery, 0.05, testMoney(t, 500))
	require.NoError(t, err)

	cmd, err := commands.NewComputeCommissionCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	commissionRepo := new(MockCommissionRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CommissionRepository").Return(commissionRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	commissionRepo.On("GetByAgentOrderType", ctx, courierID, testOrder.ID(), commission.TypeDelivery).
		Return(existing, nil)

	factory := new(MockCommissionUoWFactory)
	factory.On("Create").Return(uow)

	handler := newComputeHandler(t, factory)
	record, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, existing, record)
	commissionRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestComputeCommissionCommandHandler_Handle_NotYetCollected(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	testOrder := testOrderAt(t, order.AtSite, courierID, siteID)

	cmd, err := commands.NewComputeCommissionCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)

	factory := new(MockCommissionUoWFactory)
	factory.On("Create").Return(uow)

	handler := newComputeHandler(t, factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPolicyViolation)
}
