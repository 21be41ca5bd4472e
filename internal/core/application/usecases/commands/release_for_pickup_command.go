package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReleaseForPickupCommandIsNotConstructed = errors.New(
	"ReleaseForPickupCommand must be created via NewReleaseForPickupCommand constructor",
)

// ReleaseForPickupCommand represents a seller making a created order visible
// to couriers, pinned to the pickup site the buyer will collect from.
type ReleaseForPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	siteID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseForPickupCommand creates a command to open an order for claims.
func NewReleaseForPickupCommand(orderID, siteID kernel.UUID) (ReleaseForPickupCommand, error) {
	cmd := ReleaseForPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSiteID(siteID),
	); err != nil {
		return ReleaseForPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseForPickupCommand) Validate() error {
	return c.guard.Validate(ErrReleaseForPickupCommandIsNotConstructed)
}

// OrderID returns the order to release.
func (c ReleaseForPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SiteID returns the destination pickup site.
func (c ReleaseForPickupCommand) SiteID() kernel.UUID {
	return c.siteID
}

func (c *ReleaseForPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReleaseForPickupCommand) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}

	c.siteID = siteID
	return nil
}
