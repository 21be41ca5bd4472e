package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAdminOverrideCommandIsNotConstructed = errors.New(
	"AdminOverrideCommand must be created via NewAdminOverrideCommand constructor",
)

// AdminOverrideCommand represents an administrator forcing an order into a
// target status, bypassing evidence requirements. A justification is
// mandatory; it ends up in the evidence log as a manual entry.
type AdminOverrideCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	adminID       kernel.UUID
	target        order.Status
	justification string

	guard guard.ConstructorGuard
}

// NewAdminOverrideCommand creates a command to force a status transition.
func NewAdminOverrideCommand(orderID, adminID kernel.UUID, target order.Status, justification string) (AdminOverrideCommand, error) {
	cmd := AdminOverrideCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAdminID(adminID),
		cmd.setTarget(target),
		cmd.setJustification(justification),
	); err != nil {
		return AdminOverrideCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminOverrideCommand) Validate() error {
	return c.guard.Validate(ErrAdminOverrideCommandIsNotConstructed)
}

// OrderID returns the order to override.
func (c AdminOverrideCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AdminID returns the acting administrator.
func (c AdminOverrideCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Target returns the forced target status.
func (c AdminOverrideCommand) Target() order.Status {
	return c.target
}

// Justification returns the mandatory override justification.
func (c AdminOverrideCommand) Justification() string {
	return c.justification
}

func (c *AdminOverrideCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdminOverrideCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *AdminOverrideCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *AdminOverrideCommand) setJustification(justification string) error {
	if justification == "" {
		return errs.NewValueIsRequiredError("justification")
	}

	c.justification = justification
	return nil
}
