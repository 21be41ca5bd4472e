package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrFlagStalledOrdersCommandIsNotConstructed = errors.New(
	"FlagStalledOrdersCommand must be created via NewFlagStalledOrdersCommand constructor",
)

// FlagStalledOrdersCommand triggers a sweep over active orders that have not
// moved past the configured idle threshold. Flagged orders surface on the
// administrative review screen; their lifecycle is untouched.
type FlagStalledOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewFlagStalledOrdersCommand creates a new command to trigger the stalled
// order sweep.
func NewFlagStalledOrdersCommand() FlagStalledOrdersCommand {
	return FlagStalledOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c FlagStalledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFlagStalledOrdersCommandIsNotConstructed)
}
