package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrSweepExpiredCodesCommandIsNotConstructed = errors.New(
	"SweepExpiredCodesCommand must be created via NewSweepExpiredCodesCommand constructor",
)

// SweepExpiredCodesCommand triggers a sweep over orders awaiting collection
// whose code has outlived its validity window. Expired codes are dropped so
// the site manager can issue fresh ones; the orders stay awaiting collection.
type SweepExpiredCodesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepExpiredCodesCommand creates a new command to trigger the expired
// code sweep.
func NewSweepExpiredCodesCommand() SweepExpiredCodesCommand {
	return SweepExpiredCodesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SweepExpiredCodesCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredCodesCommandIsNotConstructed)
}
