package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRegisterSiteCommandIsNotConstructed = errors.New(
	"RegisterSiteCommand must be created via NewRegisterSiteCommand constructor",
)

// RegisterSiteCommand represents a request to register a pickup site with its
// geographic coordinates and slot capacity.
type RegisterSiteCommand struct { //nolint:recvcheck //using for validation
	siteID   kernel.UUID
	name     string
	location kernel.Location
	capacity int

	guard guard.ConstructorGuard
}

// NewRegisterSiteCommand creates a command to register a new pickup site.
func NewRegisterSiteCommand(siteID kernel.UUID, name string, location kernel.Location, capacity int) (RegisterSiteCommand, error) {
	cmd := RegisterSiteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSiteID(siteID),
		cmd.setName(name),
		cmd.setLocation(location),
		cmd.setCapacity(capacity),
	); err != nil {
		return RegisterSiteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterSiteCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSiteCommandIsNotConstructed)
}

// SiteID returns the unique identifier for the site.
func (c RegisterSiteCommand) SiteID() kernel.UUID {
	return c.siteID
}

// Name returns the site's display name.
func (c RegisterSiteCommand) Name() string {
	return c.name
}

// Location returns the site's registered coordinates.
func (c RegisterSiteCommand) Location() kernel.Location {
	return c.location
}

// Capacity returns the number of orders the site can hold at once.
func (c RegisterSiteCommand) Capacity() int {
	return c.capacity
}

func (c *RegisterSiteCommand) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}

	c.siteID = siteID
	return nil
}

func (c *RegisterSiteCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterSiteCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *RegisterSiteCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidError("capacity")
	}

	c.capacity = capacity
	return nil
}
