package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrIssueCollectionCodeCommandIsNotConstructed = errors.New(
	"IssueCollectionCodeCommand must be created via NewIssueCollectionCodeCommand constructor",
)

// IssueCollectionCodeCommand represents a site manager issuing the one-time
// collection code that the buyer will present at pickup.
type IssueCollectionCodeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIssueCollectionCodeCommand creates a command to issue a collection code.
func NewIssueCollectionCodeCommand(orderID, actorID kernel.UUID) (IssueCollectionCodeCommand, error) {
	cmd := IssueCollectionCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return IssueCollectionCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueCollectionCodeCommand) Validate() error {
	return c.guard.Validate(ErrIssueCollectionCodeCommandIsNotConstructed)
}

// OrderID returns the order to issue a code for.
func (c IssueCollectionCodeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the issuing site manager.
func (c IssueCollectionCodeCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *IssueCollectionCodeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *IssueCollectionCodeCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
