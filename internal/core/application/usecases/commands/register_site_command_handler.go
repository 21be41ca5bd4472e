package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/site"
)

// RegisterSiteCommandHandler handles pickup site registration.
type RegisterSiteCommandHandler struct {
	uowFactory SiteUoWFactory
}

// NewRegisterSiteCommandHandler creates a handler for site registration.
func NewRegisterSiteCommandHandler(uowFactory SiteUoWFactory) RegisterSiteCommandHandler {
	return RegisterSiteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the site registration command.
func (h *RegisterSiteCommandHandler) Handle(ctx context.Context, cmd RegisterSiteCommand) error {
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

	aggregate, err := site.NewPickupSite(cmd.SiteID(), cmd.Name(), cmd.Location(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = uow.SiteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
