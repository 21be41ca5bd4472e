package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/agent"
)

// RegisterAgentCommandHandler handles agent registration.
// Site managers are only registered against sites that exist.
type RegisterAgentCommandHandler struct {
	uowFactory AgentSiteUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent registration.
func NewRegisterAgentCommandHandler(uowFactory AgentSiteUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
func (h *RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.SiteID() != nil {
		if _, err := uow.SiteRepository().Get(ctx, *cmd.SiteID()); err != nil {
			return err
		}
	}

	aggregate, err := agent.NewAgent(cmd.AgentID(), cmd.Name(), cmd.Role(), cmd.SiteID())
	if err != nil {
		return err
	}

	if err = uow.AgentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
