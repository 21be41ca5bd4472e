// Package site contains the PickupSite aggregate: the staging locations where
// couriers drop goods and buyers collect them. A site's current load never
// exceeds its capacity and always equals the number of orders physically
// present (AT_SITE or AWAITING_COLLECTION) for that site.
package site

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for pickup-site operations.
var (
	// ErrSiteIsNotConstructed is returned when using an improperly initialized PickupSite.
	ErrSiteIsNotConstructed = errors.New("PickupSite must be created via NewPickupSite or RestorePickupSite")
	// ErrNameIsRequired is returned when attempting to create a site without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNothingToRelease is returned when releasing a slot on an empty site,
	// which indicates a bookkeeping bug elsewhere.
	ErrNothingToRelease = errors.New("site load is already zero")
)

// PickupSite is the aggregate for a staging location. Occupancy bookkeeping
// here mirrors the conditional-write discipline of the storage layer: the
// domain methods uphold the 0 <= currentLoad <= capacity invariant, and the
// repository enforces the same bounds atomically in SQL.
type PickupSite struct {
	id          kernel.UUID
	name        string
	location    kernel.Location
	capacity    int
	currentLoad int
	guard       guard.ConstructorGuard
}

// NewPickupSite creates an empty PickupSite with the given capacity.
// Capacity must be positive and the location valid.
func NewPickupSite(id kernel.UUID, name string, location kernel.Location, capacity int) (*PickupSite, error) {
	s := &PickupSite{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setLocation(location),
		s.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestorePickupSite reconstructs a PickupSite aggregate from persistent
// storage, including its current occupancy.
func RestorePickupSite(id kernel.UUID, name string, location kernel.Location, capacity, currentLoad int) (*PickupSite, error) {
	s, err := NewPickupSite(id, name, location, capacity)
	if err != nil {
		return nil, err
	}

	if currentLoad < 0 || currentLoad > capacity {
		return nil, errs.NewValueIsOutOfRangeError("current_load", currentLoad, 0, capacity)
	}

	s.currentLoad = currentLoad
	return s, nil
}

// Validate ensures the PickupSite instance was properly constructed.
func (s *PickupSite) Validate() error {
	if s == nil {
		return ErrSiteIsNotConstructed
	}
	return s.guard.Validate(ErrSiteIsNotConstructed)
}

// ID returns the site's unique identifier.
func (s *PickupSite) ID() kernel.UUID {
	return s.id
}

// Name returns the site's display name.
func (s *PickupSite) Name() string {
	return s.name
}

// Location returns the site's registered coordinates, the reference point for
// GPS arrival confirmations.
func (s *PickupSite) Location() kernel.Location {
	return s.location
}

// Capacity returns the maximum number of orders the site can hold.
func (s *PickupSite) Capacity() int {
	return s.capacity
}

// CurrentLoad returns the number of orders currently held at the site.
func (s *PickupSite) CurrentLoad() int {
	return s.currentLoad
}

// HasCapacity reports whether the site can accept another order.
func (s *PickupSite) HasCapacity() bool {
	return s.currentLoad < s.capacity
}

// Occupy takes one capacity slot for an arriving order.
// Fails with CapacityExceededError when the site is full.
func (s *PickupSite) Occupy() error {
	if !s.HasCapacity() {
		return errs.NewCapacityExceededError(s.id.String(), s.capacity)
	}

	s.currentLoad++
	return nil
}

// Release frees one capacity slot when an order is collected or cancelled
// out of a present-at-site status.
func (s *PickupSite) Release() error {
	if s.currentLoad == 0 {
		return ErrNothingToRelease
	}

	s.currentLoad--
	return nil
}

func (s *PickupSite) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *PickupSite) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *PickupSite) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *PickupSite) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	s.capacity = capacity
	return nil
}
