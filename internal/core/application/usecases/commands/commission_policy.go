package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CommissionPolicy holds the earning rules current at computation time.
// Resolved values are frozen into each record; later policy changes never
// rewrite existing commissions.
type CommissionPolicy struct {
	// DeliveryRate is the courier's share of the order total.
	DeliveryRate float64
	// AssistedPurchaseRate is the site manager's share of the order total,
	// used when no fixed amount is configured.
	AssistedPurchaseRate float64
	// AssistedPurchaseFixedCents overrides the rate with a flat amount
	// when positive.
	AssistedPurchaseFixedCents int64
}

// Validate checks that the configured rates are usable.
func (p CommissionPolicy) Validate() error {
	if p.DeliveryRate < 0 || p.DeliveryRate > 1 {
		return errs.NewValueIsOutOfRangeError("deliveryRate", p.DeliveryRate, 0.0, 1.0)
	}
	if p.AssistedPurchaseRate < 0 || p.AssistedPurchaseRate > 1 {
		return errs.NewValueIsOutOfRangeError("assistedPurchaseRate", p.AssistedPurchaseRate, 0.0, 1.0)
	}
	if p.AssistedPurchaseFixedCents < 0 {
		return errs.NewValueIsInvalidError("assistedPurchaseFixedCents")
	}

	return nil
}

// Resolve returns the rate and amount for a commission of the given type
// against an order total. Fixed amounts record a zero rate.
func (p CommissionPolicy) Resolve(ctype commission.Type, total kernel.Money) (float64, kernel.Money, error) {
	switch ctype {
	case commission.TypeDelivery:
		amount, err := total.MultiplyRate(p.DeliveryRate)
		if err != nil {
			return 0, kernel.Money{}, err
		}
		return p.DeliveryRate, amount, nil
	case commission.TypeAssistedPurchase:
		if p.AssistedPurchaseFixedCents > 0 {
			amount, err := kernel.NewMoney(p.AssistedPurchaseFixedCents)
			if err != nil {
				return 0, kernel.Money{}, err
			}
			return 0, amount, nil
		}
		amount, err := total.MultiplyRate(p.AssistedPurchaseRate)
		if err != nil {
			return 0, kernel.Money{}, err
		}
		return p.AssistedPurchaseRate, amount, nil
	default:
		return 0, kernel.Money{}, errs.NewValueIsInvalidError("commission type")
	}
}

// ensureCommission returns the commission for an (agent, order, type) triple,
// creating a pending record on first invocation. Subsequent invocations are
// no-ops returning the stored record, which keeps computation idempotent.
func ensureCommission(
	ctx context.Context,
	repo ports.CommissionRepository,
	policy CommissionPolicy,
	agentID kernel.UUID,
	aggregate *order.Order,
	ctype commission.Type,
) (*commission.Commission, error) {
	existing, err := repo.GetByAgentOrderType(ctx, agentID, aggregate.ID(), ctype)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	rate, amount, err := policy.Resolve(ctype, aggregate.Total())
	if err != nil {
		return nil, err
	}

	record, err := commission.NewCommission(kernel.NewUUID(), agentID, aggregate.ID(), ctype, rate, amount)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
