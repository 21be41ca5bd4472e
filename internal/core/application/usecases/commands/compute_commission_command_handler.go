package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ComputeCommissionCommandHandler computes the courier's delivery commission
// for a collected order. The operation is idempotent: a second invocation
// returns the stored record instead of creating a duplicate.
type ComputeCommissionCommandHandler struct {
	uowFactory CommissionUoWFactory
	policy     CommissionPolicy
}

// NewComputeCommissionCommandHandler creates a handler for commission computation.
func NewComputeCommissionCommandHandler(uowFactory CommissionUoWFactory, policy CommissionPolicy) (ComputeCommissionCommandHandler, error) {
	if err := policy.Validate(); err != nil {
		return ComputeCommissionCommandHandler{}, err
	}

	return ComputeCommissionCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}, nil
}

// Handle processes the computation and returns the commission record, stored
// or fresh. Only collected orders qualify.
func (h *ComputeCommissionCommandHandler) Handle(ctx context.Context, cmd ComputeCommissionCommand) (*commission.Commission, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status() != order.CollectedByBuyer {
		return nil, errs.NewPolicyViolationError(aggregate.Status().String(), "commission computation")
	}
	if aggregate.CourierID() == nil {
		return nil, errs.NewValueIsInvalidError("courier")
	}

	record, err := ensureCommission(
		ctx, uow.CommissionRepository(), h.policy, *aggregate.CourierID(), aggregate, commission.TypeDelivery)
	if err != nil {
		return nil, err
	}

	if aggregate.CommissionAmount() == nil {
		if err = aggregate.SetCommissionAmount(record.Amount()); err != nil {
			return nil, err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
