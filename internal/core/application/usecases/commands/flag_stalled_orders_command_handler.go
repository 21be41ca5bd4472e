package commands

import (
	"context"
	"time"

	"fulfillment/internal/pkg/errs"
)

// FlagStalledOrdersCommandHandler flags active orders whose status has not
// changed within the stale period. The flag is advisory bookkeeping; any
// subsequent transition clears it.
type FlagStalledOrdersCommandHandler struct {
	uowFactory  OrderUoWFactory
	stalePeriod time.Duration
}

// NewFlagStalledOrdersCommandHandler creates a handler for the stalled order
// sweep. stalePeriod is how long an order may sit in one status before it is
// flagged.
func NewFlagStalledOrdersCommandHandler(uowFactory OrderUoWFactory, stalePeriod time.Duration) (FlagStalledOrdersCommandHandler, error) {
	if stalePeriod <= 0 {
		return FlagStalledOrdersCommandHandler{}, errs.NewValueIsInvalidError("stalePeriod")
	}

	return FlagStalledOrdersCommandHandler{
		uowFactory:  uowFactory,
		stalePeriod: stalePeriod,
	}, nil
}

// Handle processes the sweep and returns how many orders were flagged.
func (h *FlagStalledOrdersCommandHandler) Handle(ctx context.Context, cmd FlagStalledOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-h.stalePeriod)
	stalled, err := uow.OrderRepository().GetAllStalled(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stalled {
		aggregate.MarkStuck()
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stalled), nil
}
