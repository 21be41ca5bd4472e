package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/site"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	siteLatitude  = -1.9441
	siteLongitude = 30.0619
)

func newConfirmationHandler(t *testing.T, factory commands.FulfillmentUoWFactory) commands.SubmitConfirmationCommandHandler {
	t.Helper()
	verifier, err := services.NewHandoverVerifier(100, 30*time.Minute)
	require.NoError(t, err)
	policy := commands.CommissionPolicy{DeliveryRate: 0.05, AssistedPurchaseRate: 0.02}
	handler, err := commands.NewSubmitConfirmationCommandHandler(factory, verifier, policy, 3)
	require.NoError(t, err)
	return handler
}

func newTestSiteAt(t *testing.T, id kernel.UUID) *site.PickupSite {
	t.Helper()
	loc, err := kernel.NewLocation(siteLatitude, siteLongitude)
	require.NoError(t, err)
	s, err := site.RestorePickupSite(id, "Kigali Central", loc, 2, 0)
	require.NoError(t, err)
	return s
}

func TestSubmitConfirmationCommandHandler_Handle_GPSWithinTolerance(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	testCourier, _ := agent.NewAgent(courierID, "Jean Bosco", agent.RoleCourier, nil)
	manager, _ := agent.NewAgent(kernel.NewUUID(), "Claudine", agent.RoleSiteManager, &siteID)
	testOrder := testOrderAt(t, order.EnRouteToSite, courierID, siteID)

	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), courierID, confirmation.KindGPS, "-1.9440,30.0619", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	siteRepo := new(MockSiteRepository)
	confirmationRepo := new(MockConfirmationRepository)
	commissionRepo := new(MockCommissionRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("SiteRepository").Return(siteRepo)
	uow.On("ConfirmationRepository").Return(confirmationRepo)
	uow.On("CommissionRepository").Return(commissionRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, courierID).Return(testCourier, nil)
	siteRepo.On("Get", ctx, siteID).Return(newTestSiteAt(t, siteID), nil)
	confirmationRepo.On("Add", ctx, mock.AnythingOfType("*confirmation.Confirmation")).Return(nil)
	siteRepo.On("AcquireSlot", ctx, siteID).Return(nil)
	orderRepo.On("UpdateWhereStatus", ctx, testOrder, order.EnRouteToSite).Return(nil)
	agentRepo.On("GetManagerForSite", ctx, siteID).Return(manager, nil)
	commissionRepo.On("GetByAgentOrderType", ctx, manager.ID(), testOrder.ID(), commission.TypeAssistedPurchase).
		Return(nil, errs.NewObjectNotFoundError("commission", nil))
	commissionRepo.On("Add", ctx, mock.AnythingOfType("*commission.Commission")).Return(nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.AtSite, testOrder.Status())
	siteRepo.AssertCalled(t, "AcquireSlot", ctx, siteID)
	commissionRepo.AssertCalled(t, "Add", ctx, mock.AnythingOfType("*commission.Commission"))
}

func TestSubmitConfirmationCommandHandler_Handle_GPSOutsideTolerance(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	testCourier, _ := agent.NewAgent(courierID, "Jean Bosco", agent.RoleCourier, nil)
	testOrder := testOrderAt(t, order.EnRouteToSite, courierID, siteID)

	// Roughly 1.1 km north of the site.
	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), courierID, confirmation.KindGPS, "-1.9341,30.0619", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	siteRepo := new(MockSiteRepository)
	confirmationRepo := new(MockConfirmationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("SiteRepository").Return(siteRepo)
	uow.On("ConfirmationRepository").Return(confirmationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, courierID).Return(testCourier, nil)
	siteRepo.On("Get", ctx, siteID).Return(newTestSiteAt(t, siteID), nil)
	confirmationRepo.On("Add", ctx, mock.MatchedBy(func(c *confirmation.Confirmation) bool {
		return !c.IsAccepted()
	})).Return(nil)
	confirmationRepo.On("CountRejected", ctx, testOrder.ID(), confirmation.KindGPS).Return(1, nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, order.EnRouteToSite, testOrder.Status())
	assert.False(t, testOrder.NeedsReview())
	// The rejected attempt itself is committed.
	uow.AssertCalled(t, "Commit", ctx)
	siteRepo.AssertNotCalled(t, "AcquireSlot", ctx, siteID)
}

func TestSubmitConfirmationCommandHandler_Handle_RetryLimitFlagsOrder(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	testCourier, _ := agent.NewAgent(courierID, "Jean Bosco", agent.RoleCourier, nil)
	testOrder := testOrderAt(t, order.EnRouteToSite, courierID, siteID)

	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), courierID, confirmation.KindGPS, "-1.9341,30.0619", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	siteRepo := new(MockSiteRepository)
	confirmationRepo := new(MockConfirmationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("SiteRepository").Return(siteRepo)
	uow.On("ConfirmationRepository").Return(confirmationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, courierID).Return(testCourier, nil)
	siteRepo.On("Get", ctx, siteID).Return(newTestSiteAt(t, siteID), nil)
	confirmationRepo.On("Add", ctx, mock.AnythingOfType("*confirmation.Confirmation")).Return(nil)
	confirmationRepo.On("CountRejected", ctx, testOrder.ID(), confirmation.KindGPS).Return(3, nil)
	orderRepo.On("Update", ctx, testOrder).Return(nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.True(t, testOrder.NeedsReview())
	orderRepo.AssertCalled(t, "Update", ctx, testOrder)
}

func TestSubmitConfirmationCommandHandler_Handle_SiteFullAbortsEverything(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	testCourier, _ := agent.NewAgent(courierID, "Jean Bosco", agent.RoleCourier, nil)
	testOrder := testOrderAt(t, order.EnRouteToSite, courierID, siteID)

	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), courierID, confirmation.KindGPS, "-1.9440,30.0619", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	siteRepo := new(MockSiteRepository)
	confirmationRepo := new(MockConfirmationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("SiteRepository").Return(siteRepo)
	uow.On("ConfirmationRepository").Return(confirmationRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, courierID).Return(testCourier, nil)
	siteRepo.On("Get", ctx, siteID).Return(newTestSiteAt(t, siteID), nil)
	confirmationRepo.On("Add", ctx, mock.AnythingOfType("*confirmation.Confirmation")).Return(nil)
	siteRepo.On("AcquireSlot", ctx, siteID).Return(errs.NewCapacityExceededError(siteID.String(), 2))

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSubmitConfirmationCommandHandler_Handle_OTPCollectsOrder(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	managerID := kernel.NewUUID()
	manager, _ := agent.NewAgent(managerID, "Claudine", agent.RoleSiteManager, &siteID)
	testOrder := testOrderAt(t, order.AwaitingCollection, courierID, siteID)

	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), managerID, confirmation.KindOTP, "482913", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	siteRepo := new(MockSiteRepository)
	confirmationRepo := new(MockConfirmationRepository)
	commissionRepo := new(MockCommissionRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("SiteRepository").Return(siteRepo)
	uow.On("ConfirmationRepository").Return(confirmationRepo)
	uow.On("CommissionRepository").Return(commissionRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, managerID).Return(manager, nil)
	confirmationRepo.On("Add", ctx, mock.MatchedBy(func(c *confirmation.Confirmation) bool {
		return c.IsAccepted()
	})).Return(nil)
	commissionRepo.On("GetByAgentOrderType", ctx, courierID, testOrder.ID(), commission.TypeDelivery).
		Return(nil, errs.NewObjectNotFoundError("commission", nil))
	commissionRepo.On("Add", ctx, mock.MatchedBy(func(c *commission.Commission) bool {
		return c.Type() == commission.TypeDelivery && c.Status() == commission.StatusPending
	})).Return(nil)
	orderRepo.On("UpdateWhereStatus", ctx, testOrder, order.AwaitingCollection).Return(nil)
	siteRepo.On("ReleaseSlot", ctx, siteID).Return(nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.CollectedByBuyer, testOrder.Status())
	assert.Nil(t, testOrder.CollectionCode())
	require.NotNil(t, testOrder.CommissionAmount())
	// 5% of the 10000 cent total.
	assert.Equal(t, int64(500), testOrder.CommissionAmount().Cents())
	siteRepo.AssertCalled(t, "ReleaseSlot", ctx, siteID)
}

func TestSubmitConfirmationCommandHandler_Handle_ExpiredOTPRejected(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	managerID := kernel.NewUUID()
	manager, _ := agent.NewAgent(managerID, "Claudine", agent.RoleSiteManager, &siteID)

	testOrder := testOrderAt(t, order.AtSite, courierID, siteID)
	require.NoError(t, testOrder.IssueCollectionCode("482913", time.Now().UTC().Add(-31*time.Minute)))

	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), managerID, confirmation.KindOTP, "482913", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	confirmationRepo := new(MockConfirmationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("ConfirmationRepository").Return(confirmationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, managerID).Return(manager, nil)
	confirmationRepo.On("Add", ctx, mock.MatchedBy(func(c *confirmation.Confirmation) bool {
		return !c.IsAccepted()
	})).Return(nil)
	confirmationRepo.On("CountRejected", ctx, testOrder.ID(), confirmation.KindOTP).Return(1, nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, order.AwaitingCollection, testOrder.Status())
}

func TestSubmitConfirmationCommandHandler_Handle_GPSWithoutPinnedSite(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	testCourier, _ := agent.NewAgent(courierID, "Jean Bosco", agent.RoleCourier, nil)

	// A legacy row can reach this status with no site reference.
	base := testOrderAt(t, order.EnRouteToSite, courierID, kernel.NewUUID())
	testOrder, err := order.RestoreOrder(base.ID(), base.BuyerID(), base.SellerID(),
		base.CourierID(), nil, order.EnRouteToSite, base.Total(), base.History(),
		nil, nil, nil, false, false)
	require.NoError(t, err)

	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), courierID, confirmation.KindGPS, "-1.9440,30.0619", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	siteRepo := new(MockSiteRepository)
	confirmationRepo := new(MockConfirmationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("ConfirmationRepository").Return(confirmationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, courierID).Return(testCourier, nil)
	confirmationRepo.On("Add", ctx, mock.MatchedBy(func(c *confirmation.Confirmation) bool {
		return !c.IsAccepted()
	})).Return(nil)
	confirmationRepo.On("CountRejected", ctx, testOrder.ID(), confirmation.KindGPS).Return(1, nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, order.EnRouteToSite, testOrder.Status())
	siteRepo.AssertNotCalled(t, "Get", ctx, mock.Anything)
	siteRepo.AssertNotCalled(t, "AcquireSlot", ctx, mock.Anything)
}

func TestSubmitConfirmationCommandHandler_Handle_WrongCourierRejected(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	intruderID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	intruder, _ := agent.NewAgent(intruderID, "Patrick", agent.RoleCourier, nil)
	testOrder := testOrderAt(t, order.AtSeller, courierID, siteID)

	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), intruderID, confirmation.KindPhoto, "uploads/handover/7f3a.jpg", "intact")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, intruderID).Return(intruder, nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSubmitConfirmationCommandHandler_Handle_PhotoAdvancesToPickedUp(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	testCourier, _ := agent.NewAgent(courierID, "Jean Bosco", agent.RoleCourier, nil)
	testOrder := testOrderAt(t, order.AtSeller, courierID, siteID)

	cmd, err := commands.NewSubmitConfirmationCommand(
		testOrder.ID(), courierID, confirmation.KindPhoto, "uploads/handover/7f3a.jpg", "box sealed")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	confirmationRepo := new(MockConfirmationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("ConfirmationRepository").Return(confirmationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil)
	agentRepo.On("Get", ctx, courierID).Return(testCourier, nil)
	confirmationRepo.On("Add", ctx, mock.AnythingOfType("*confirmation.Confirmation")).Return(nil)
	orderRepo.On("UpdateWhereStatus", ctx, testOrder, order.AtSeller).Return(nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow)

	handler := newConfirmationHandler(t, factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, testOrder.Status())
}
