// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest combination of repositories it needs;
// the single storage-backed unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// SiteRepoFactory provides access to the site repository within a transaction.
	SiteRepoFactory interface {
		SiteRepository() ports.SiteRepository
	}

	// ConfirmationRepoFactory provides access to the evidence log within a transaction.
	ConfirmationRepoFactory interface {
		ConfirmationRepository() ports.ConfirmationRepository
	}

	// CommissionRepoFactory provides access to the commission repository within a transaction.
	CommissionRepoFactory interface {
		CommissionRepository() ports.CommissionRepository
	}

	// ProofRepoFactory provides access to the payment proof repository within a transaction.
	ProofRepoFactory interface {
		PaymentProofRepository() ports.PaymentProofRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SiteUoW manages transactions for site-only operations.
	SiteUoW interface {
		TxManager
		SiteRepoFactory
	}

	// SiteUoWFactory creates new site unit of work instances.
	SiteUoWFactory interface {
		Create() SiteUoW
	}

	// AgentSiteUoW manages transactions touching agents and the sites they
	// are assigned to.
	AgentSiteUoW interface {
		TxManager
		AgentRepoFactory
		SiteRepoFactory
	}

	// AgentSiteUoWFactory creates new agent/site unit of work instances.
	AgentSiteUoWFactory interface {
		Create() AgentSiteUoW
	}

	// OrderSiteUoW manages transactions touching orders and sites.
	OrderSiteUoW interface {
		TxManager
		OrderRepoFactory
		SiteRepoFactory
	}

	// OrderSiteUoWFactory creates new order/site unit of work instances.
	OrderSiteUoWFactory interface {
		Create() OrderSiteUoW
	}

	// OrderAgentUoW manages transactions touching orders and agents.
	// Used by operations that must authorize the acting agent.
	OrderAgentUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
	}

	// OrderAgentUoWFactory creates new order/agent unit of work instances.
	OrderAgentUoWFactory interface {
		Create() OrderAgentUoW
	}

	// CommissionUoW manages transactions for commission computation and
	// review, which read orders and agents alongside the ledger.
	CommissionUoW interface {
		TxManager
		CommissionRepoFactory
		OrderRepoFactory
		AgentRepoFactory
	}

	// CommissionUoWFactory creates new commission unit of work instances.
	CommissionUoWFactory interface {
		Create() CommissionUoW
	}

	// ProofUoW manages transactions for payment proof submission and review.
	ProofUoW interface {
		TxManager
		ProofRepoFactory
		OrderRepoFactory
	}

	// ProofUoWFactory creates new payment proof unit of work instances.
	ProofUoWFactory interface {
		Create() ProofUoW
	}

	// FulfillmentUoW manages transactions that span the whole handover flow.
	// Evidence verification commits the ledger move, the capacity change, the
	// log entry, and any earned commission as one atomic unit.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
		SiteRepoFactory
		ConfirmationRepoFactory
		CommissionRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
