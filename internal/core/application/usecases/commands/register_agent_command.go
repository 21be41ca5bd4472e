package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRegisterAgentCommandIsNotConstructed = errors.New(
	"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
)

// RegisterAgentCommand represents a request to register a courier or site
// manager. Site managers must name the site they run.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	name    string
	role    agent.Role
	siteID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register a new agent.
func NewRegisterAgentCommand(agentID kernel.UUID, name string, role agent.Role, siteID *kernel.UUID) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setRole(role),
		cmd.setSiteID(siteID),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the agent.
func (c RegisterAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string {
	return c.name
}

// Role returns the agent's role.
func (c RegisterAgentCommand) Role() agent.Role {
	return c.role
}

// SiteID returns the assigned site for site managers, nil for couriers.
func (c RegisterAgentCommand) SiteID() *kernel.UUID {
	return c.siteID
}

func (c *RegisterAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setRole(role agent.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterAgentCommand) setSiteID(siteID *kernel.UUID) error {
	if siteID != nil {
		if err := siteID.Validate(); err != nil {
			return err
		}
	}

	c.siteID = siteID
	return nil
}
