package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// AgentRepository returns an AgentRepository bound to the current transaction.
	AgentRepository() AgentRepository

	// SiteRepository returns a SiteRepository bound to the current transaction.
	SiteRepository() SiteRepository

	// ConfirmationRepository returns a ConfirmationRepository bound to the current transaction.
	ConfirmationRepository() ConfirmationRepository

	// CommissionRepository returns a CommissionRepository bound to the current transaction.
	CommissionRepository() CommissionRepository

	// PaymentProofRepository returns a PaymentProofRepository bound to the current transaction.
	PaymentProofRepository() PaymentProofRepository
}
