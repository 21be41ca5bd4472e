package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceLegCommandIsNotConstructed = errors.New(
	"AdvanceLegCommand must be created via NewAdvanceLegCommand constructor",
)

// AdvanceLegCommand represents the assigned courier reporting progress along
// an evidence-free leg of the route. Legs that require evidence go through
// confirmation submission instead.
type AdvanceLegCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceLegCommand creates a command to advance an order one leg forward.
func NewAdvanceLegCommand(orderID, actorID kernel.UUID, target order.Status) (AdvanceLegCommand, error) {
	cmd := AdvanceLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceLegCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceLegCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceLegCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceLegCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the courier reporting progress.
func (c AdvanceLegCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Target returns the requested next status.
func (c AdvanceLegCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceLegCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceLegCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AdvanceLegCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
