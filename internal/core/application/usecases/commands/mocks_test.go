package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/site"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateWhereStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllClaimable(ctx context.Context, siteID *kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllStalled(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithExpiredCode(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) GetManagerForSite(ctx context.Context, siteID kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

type MockSiteRepository struct{ mock.Mock }

func (m *MockSiteRepository) Add(ctx context.Context, s *site.PickupSite) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSiteRepository) Update(ctx context.Context, s *site.PickupSite) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSiteRepository) Get(ctx context.Context, id kernel.UUID) (*site.PickupSite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*site.PickupSite), args.Error(1)
}

func (m *MockSiteRepository) AcquireSlot(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSiteRepository) ReleaseSlot(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockConfirmationRepository struct{ mock.Mock }

func (m *MockConfirmationRepository) Add(ctx context.Context, c *confirmation.Confirmation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConfirmationRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*confirmation.Confirmation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*confirmation.Confirmation), args.Error(1)
}

func (m *MockConfirmationRepository) CountRejected(ctx context.Context, orderID kernel.UUID, kind confirmation.Kind) (int, error) {
	args := m.Called(ctx, orderID, kind)
	return args.Int(0), args.Error(1)
}

type MockCommissionRepository struct{ mock.Mock }

func (m *MockCommissionRepository) Add(ctx context.Context, c *commission.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommissionRepository) Update(ctx context.Context, c *commission.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommissionRepository) Get(ctx context.Context, id kernel.UUID) (*commission.Commission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commission.Commission), args.Error(1)
}

func (m *MockCommissionRepository) GetByAgentOrderType(ctx context.Context, agentID, orderID kernel.UUID, ctype commission.Type) (*commission.Commission, error) {
	args := m.Called(ctx, agentID, orderID, ctype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commission.Commission), args.Error(1)
}

func (m *MockCommissionRepository) GetAllPendingForOrder(ctx context.Context, orderID kernel.UUID) ([]*commission.Commission, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*commission.Commission), args.Error(1)
}

type MockProofRepository struct{ mock.Mock }

func (m *MockProofRepository) Add(ctx context.Context, p *commission.PaymentProof) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProofRepository) Update(ctx context.Context, p *commission.PaymentProof) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProofRepository) Get(ctx context.Context, id kernel.UUID) (*commission.PaymentProof, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commission.PaymentProof), args.Error(1)
}

func (m *MockProofRepository) GetPendingByOrderAgent(ctx context.Context, orderID, agentID kernel.UUID) (*commission.PaymentProof, error) {
	args := m.Called(ctx, orderID, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commission.PaymentProof), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

func (m *MockUoW) SiteRepository() ports.SiteRepository {
	args := m.Called()
	return args.Get(0).(ports.SiteRepository)
}

func (m *MockUoW) ConfirmationRepository() ports.ConfirmationRepository {
	args := m.Called()
	return args.Get(0).(ports.ConfirmationRepository)
}

func (m *MockUoW) CommissionRepository() ports.CommissionRepository {
	args := m.Called()
	return args.Get(0).(ports.CommissionRepository)
}

func (m *MockUoW) PaymentProofRepository() ports.PaymentProofRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentProofRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSiteUoWFactory struct{ mock.Mock }

func (m *MockSiteUoWFactory) Create() commands.SiteUoW {
	args := m.Called()
	return args.Get(0).(commands.SiteUoW)
}

type MockAgentSiteUoWFactory struct{ mock.Mock }

func (m *MockAgentSiteUoWFactory) Create() commands.AgentSiteUoW {
	args := m.Called()
	return args.Get(0).(commands.AgentSiteUoW)
}

type MockOrderSiteUoWFactory struct{ mock.Mock }

func (m *MockOrderSiteUoWFactory) Create() commands.OrderSiteUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderSiteUoW)
}

type MockOrderAgentUoWFactory struct{ mock.Mock }

func (m *MockOrderAgentUoWFactory) Create() commands.OrderAgentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderAgentUoW)
}

type MockCommissionUoWFactory struct{ mock.Mock }

func (m *MockCommissionUoWFactory) Create() commands.CommissionUoW {
	args := m.Called()
	return args.Get(0).(commands.CommissionUoW)
}

type MockProofUoWFactory struct{ mock.Mock }

func (m *MockProofUoWFactory) Create() commands.ProofUoW {
	args := m.Called()
	return args.Get(0).(commands.ProofUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}
