package cmd

import (
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handler constructors
// that validate configuration return errors; the root surfaces them so a bad
// configuration fails startup.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over a live database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) commissionPolicy() commands.CommissionPolicy {
	return commands.CommissionPolicy{
		DeliveryRate:               c.config.DeliveryRate,
		AssistedPurchaseRate:       c.config.AssistedPurchaseRate,
		AssistedPurchaseFixedCents: c.config.AssistedPurchaseFixedCents,
	}
}

// CreateCreateOrderCommandHandler wires the order creation use case.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

// CreateRegisterAgentCommandHandler wires the agent registration use case.
func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	var f commands.AgentSiteUoWFactory = FuncAgentSiteUoWFactory(func() commands.AgentSiteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAgentCommandHandler(f)
}

// CreateRegisterSiteCommandHandler wires the site registration use case.
func (c *CompositionRoot) CreateRegisterSiteCommandHandler() commands.RegisterSiteCommandHandler {
	var f commands.SiteUoWFactory = FuncSiteUoWFactory(func() commands.SiteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterSiteCommandHandler(f)
}

// CreateReleaseForPickupCommandHandler wires the release use case.
func (c *CompositionRoot) CreateReleaseForPickupCommandHandler() commands.ReleaseForPickupCommandHandler {
	var f commands.OrderSiteUoWFactory = FuncOrderSiteUoWFactory(func() commands.OrderSiteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseForPickupCommandHandler(f)
}

// CreateClaimOrderCommandHandler wires the claim use case.
func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderAgentUoWFactory = FuncOrderAgentUoWFactory(func() commands.OrderAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

// CreateAdvanceLegCommandHandler wires the courier leg transition use case.
func (c *CompositionRoot) CreateAdvanceLegCommandHandler() commands.AdvanceLegCommandHandler {
	var f commands.OrderAgentUoWFactory = FuncOrderAgentUoWFactory(func() commands.OrderAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceLegCommandHandler(f)
}

// CreateSubmitConfirmationCommandHandler wires the confirmation engine.
func (c *CompositionRoot) CreateSubmitConfirmationCommandHandler() (commands.SubmitConfirmationCommandHandler, error) {
	verifier, err := services.NewHandoverVerifier(
		c.config.GPSToleranceMeters,
		time.Duration(c.config.CodeTTLMinutes)*time.Minute,
	)
	if err != nil {
		return commands.SubmitConfirmationCommandHandler{}, err
	}

	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitConfirmationCommandHandler(
		f, verifier, c.commissionPolicy(), c.config.MaxConfirmationRetries)
}

// CreateIssueCollectionCodeCommandHandler wires the code issuance use case.
func (c *CompositionRoot) CreateIssueCollectionCodeCommandHandler() commands.IssueCollectionCodeCommandHandler {
	var f commands.OrderAgentUoWFactory = FuncOrderAgentUoWFactory(func() commands.OrderAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueCollectionCodeCommandHandler(f)
}

// CreateAdminOverrideCommandHandler wires the administrative override use case.
func (c *CompositionRoot) CreateAdminOverrideCommandHandler() commands.AdminOverrideCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdminOverrideCommandHandler(f)
}

// CreateComputeCommissionCommandHandler wires the commission computation use case.
func (c *CompositionRoot) CreateComputeCommissionCommandHandler() (commands.ComputeCommissionCommandHandler, error) {
	var f commands.CommissionUoWFactory = FuncCommissionUoWFactory(func() commands.CommissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewComputeCommissionCommandHandler(f, c.commissionPolicy())
}

// CreateReviewCommissionCommandHandler wires the commission review use case.
func (c *CompositionRoot) CreateReviewCommissionCommandHandler() commands.ReviewCommissionCommandHandler {
	var f commands.CommissionUoWFactory = FuncCommissionUoWFactory(func() commands.CommissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewCommissionCommandHandler(f)
}

// CreateSubmitPaymentProofCommandHandler wires the payment proof submission use case.
func (c *CompositionRoot) CreateSubmitPaymentProofCommandHandler() commands.SubmitPaymentProofCommandHandler {
	var f commands.ProofUoWFactory = FuncProofUoWFactory(func() commands.ProofUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPaymentProofCommandHandler(f)
}

// CreateReviewPaymentProofCommandHandler wires the payment proof review use case.
func (c *CompositionRoot) CreateReviewPaymentProofCommandHandler() commands.ReviewPaymentProofCommandHandler {
	var f commands.ProofUoWFactory = FuncProofUoWFactory(func() commands.ProofUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewPaymentProofCommandHandler(f)
}

// CreateFlagStalledOrdersCommandHandler wires the stalled order sweep.
func (c *CompositionRoot) CreateFlagStalledOrdersCommandHandler() (commands.FlagStalledOrdersCommandHandler, error) {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagStalledOrdersCommandHandler(
		f, time.Duration(c.config.StuckOrderHours)*time.Hour)
}

// CreateSweepExpiredCodesCommandHandler wires the expired code sweep.
func (c *CompositionRoot) CreateSweepExpiredCodesCommandHandler() (commands.SweepExpiredCodesCommandHandler, error) {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepExpiredCodesCommandHandler(
		f, time.Duration(c.config.CodeTTLMinutes)*time.Minute)
}

// CreateListClaimableOrdersQueryHandler wires the claimable pool query.
func (c *CompositionRoot) CreateListClaimableOrdersQueryHandler() queries.ListClaimableOrdersQueryHandler {
	return queries.NewListClaimableOrdersQueryHandler(c.gormDB)
}

// CreateGetOrderHistoryQueryHandler wires the order history query.
func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

// CreateGetPendingCommissionsQueryHandler wires the pending commission query.
func (c *CompositionRoot) CreateGetPendingCommissionsQueryHandler() queries.GetPendingCommissionsQueryHandler {
	return queries.NewGetPendingCommissionsQueryHandler(c.gormDB)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncSiteUoWFactory adapts a closure to the SiteUoWFactory interface.
type FuncSiteUoWFactory func() commands.SiteUoW

func (f FuncSiteUoWFactory) Create() commands.SiteUoW {
	return f()
}

// FuncAgentSiteUoWFactory adapts a closure to the AgentSiteUoWFactory interface.
type FuncAgentSiteUoWFactory func() commands.AgentSiteUoW

func (f FuncAgentSiteUoWFactory) Create() commands.AgentSiteUoW {
	return f()
}

// FuncOrderSiteUoWFactory adapts a closure to the OrderSiteUoWFactory interface.
type FuncOrderSiteUoWFactory func() commands.OrderSiteUoW

func (f FuncOrderSiteUoWFactory) Create() commands.OrderSiteUoW {
	return f()
}

// FuncOrderAgentUoWFactory adapts a closure to the OrderAgentUoWFactory interface.
type FuncOrderAgentUoWFactory func() commands.OrderAgentUoW

func (f FuncOrderAgentUoWFactory) Create() commands.OrderAgentUoW {
	return f()
}

// FuncCommissionUoWFactory adapts a closure to the CommissionUoWFactory interface.
type FuncCommissionUoWFactory func() commands.CommissionUoW

func (f FuncCommissionUoWFactory) Create() commands.CommissionUoW {
	return f()
}

// FuncProofUoWFactory adapts a closure to the ProofUoWFactory interface.
type FuncProofUoWFactory func() commands.ProofUoW

func (f FuncProofUoWFactory) Create() commands.ProofUoW {
	return f()
}

// FuncFulfillmentUoWFactory adapts a closure to the FulfillmentUoWFactory interface.
type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
