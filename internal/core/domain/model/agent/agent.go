// Package agent contains the Agent aggregate: the couriers and pickup-site
// managers who drive order fulfillment. Agents are created on registration,
// deactivated by an administrator, and never deleted while referenced by
// historical orders.
package agent

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Role tags what kind of work an agent performs.
type Role string

const (
	// RoleCourier transports goods from sellers to pickup sites.
	RoleCourier Role = "courier"
	// RoleSiteManager manages a pickup site and hands goods to buyers.
	RoleSiteManager Role = "site_manager"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent")
	// ErrSiteRequiredForManager is returned when a site manager has no assigned site.
	ErrSiteRequiredForManager = errs.NewValueIsRequiredError("site manager must have an assigned site")
)

// Validate checks that the role belongs to the closed set.
func (r Role) Validate() error {
	switch r {
	case RoleCourier, RoleSiteManager:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the stable wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Agent represents a courier or a pickup-site manager.
//
// Business rules:
//   - must have a valid UUID, non-empty name, and a role from the closed set
//   - site managers always reference the site they manage
//   - deactivation withdraws the agent from new work without deleting history
type Agent struct {
	id        kernel.UUID
	name      string
	role      Role
	available bool
	siteID    *kernel.UUID
	guard     guard.ConstructorGuard
}

// NewAgent creates an active Agent. Couriers take no site; site managers must
// reference the site they manage.
func NewAgent(id kernel.UUID, name string, role Role, siteID *kernel.UUID) (*Agent, error) {
	a := &Agent{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
		a.setSiteID(siteID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent aggregate from persistent storage.
func RestoreAgent(id kernel.UUID, name string, role Role, available bool, siteID *kernel.UUID) (*Agent, error) {
	a, err := NewAgent(id, name, role, siteID)
	if err != nil {
		return nil, err
	}

	a.available = available
	return a, nil
}

// Validate ensures the Agent instance was properly constructed.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by identity.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// Role returns the agent's role tag.
func (a *Agent) Role() Role {
	return a.role
}

// IsAvailable reports whether the agent can take on new work.
func (a *Agent) IsAvailable() bool {
	return a.available
}

// SiteID returns the managed site for site managers, nil for couriers.
func (a *Agent) SiteID() *kernel.UUID {
	return a.siteID
}

// IsCourier reports whether the agent transports goods.
func (a *Agent) IsCourier() bool {
	return a.role == RoleCourier
}

// ManagesSite reports whether the agent manages the given pickup site.
func (a *Agent) ManagesSite(siteID kernel.UUID) bool {
	return a.role == RoleSiteManager && a.siteID != nil && a.siteID.IsEqual(siteID)
}

// Deactivate withdraws the agent from new work. Historical order references
// stay intact; the record is never deleted.
func (a *Agent) Deactivate() {
	a.available = false
}

// Activate returns the agent to service.
func (a *Agent) Activate() {
	a.available = true
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Agent) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Agent) setSiteID(siteID *kernel.UUID) error {
	if a.role == RoleSiteManager && siteID == nil {
		return ErrSiteRequiredForManager
	}
	if siteID != nil {
		if err := siteID.Validate(); err != nil {
			return err
		}
	}
	a.siteID = siteID
	return nil
}
