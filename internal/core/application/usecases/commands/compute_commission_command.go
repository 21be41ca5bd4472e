package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrComputeCommissionCommandIsNotConstructed = errors.New(
	"ComputeCommissionCommand must be created via NewComputeCommissionCommand constructor",
)

// ComputeCommissionCommand represents a request to compute, or look up, the
// courier's delivery commission for a collected order.
type ComputeCommissionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewComputeCommissionCommand creates a command to compute an order's
// delivery commission.
func NewComputeCommissionCommand(orderID kernel.UUID) (ComputeCommissionCommand, error) {
	cmd := ComputeCommissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ComputeCommissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ComputeCommissionCommand) Validate() error {
	return c.guard.Validate(ErrComputeCommissionCommandIsNotConstructed)
}

// OrderID returns the order whose commission to compute.
func (c ComputeCommissionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ComputeCommissionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
