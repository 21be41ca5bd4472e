package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via the NewMoney constructor")

// Money represents a non-negative monetary amount in minor units (cents).
// It is an immutable value object used for order totals, commission amounts,
// and payment-proof claims. The zero value is invalid — use the constructor.
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units.
// Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d is negative", cents))
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// MultiplyRate returns a new Money scaled by a fractional rate, rounded to
// the nearest minor unit. Used to derive percentage commissions from order
// totals. The rate must lie in [0..1].
func (m Money) MultiplyRate(rate float64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if rate < 0 || rate > 1 {
		return Money{}, errs.NewValueIsOutOfRangeError("rate", rate, 0.0, 1.0)
	}

	return NewMoney(int64(math.Round(float64(m.cents) * rate)))
}

// IsEqual compares two monetary amounts.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted as "units.cc".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
