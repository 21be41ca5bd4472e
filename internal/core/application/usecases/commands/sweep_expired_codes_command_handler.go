package commands

import (
	"context"
	"time"

	"fulfillment/internal/pkg/errs"
)

// SweepExpiredCodesCommandHandler drops collection codes that outlived their
// validity window. A code is also rejected at verification time, so the sweep
// is hygiene rather than enforcement; it keeps dead codes from lingering in
// storage.
type SweepExpiredCodesCommandHandler struct {
	uowFactory OrderUoWFactory
	codeTTL    time.Duration
}

// NewSweepExpiredCodesCommandHandler creates a handler for the expired code
// sweep. codeTTL must match the validity window the verifier enforces.
func NewSweepExpiredCodesCommandHandler(uowFactory OrderUoWFactory, codeTTL time.Duration) (SweepExpiredCodesCommandHandler, error) {
	if codeTTL <= 0 {
		return SweepExpiredCodesCommandHandler{}, errs.NewValueIsInvalidError("codeTTL")
	}

	return SweepExpiredCodesCommandHandler{
		uowFactory: uowFactory,
		codeTTL:    codeTTL,
	}, nil
}

// Handle processes the sweep and returns how many codes were dropped.
func (h *SweepExpiredCodesCommandHandler) Handle(ctx context.Context, cmd SweepExpiredCodesCommand) (int, error) {
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

	cutoff := time.Now().UTC().Add(-h.codeTTL)
	expired, err := uow.OrderRepository().GetAllWithExpiredCode(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range expired {
		aggregate.ClearCollectionCode()
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
