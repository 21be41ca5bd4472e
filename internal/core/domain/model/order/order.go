package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCollectionCodeRequired is returned when advancing to AwaitingCollection
	// without issuing a collection code first.
	ErrCollectionCodeRequired = errors.New("collection code must be issued via IssueCollectionCode")

	// ErrCourierRequired is returned when advancing to ClaimedByCourier
	// without going through Claim.
	ErrCourierRequired = errors.New("courier must be assigned via Claim")

	// ErrSiteRequired is returned when forcing an order into a status that
	// implies a pinned pickup site while none is set.
	ErrSiteRequired = errors.New("pickup site must be pinned via ReleaseForPickup")
)

// StatusChange is one immutable entry of an order's status history.
type StatusChange struct {
	Status Status
	At     time.Time
}

// Order is the aggregate root of the fulfillment ledger. It owns the order's
// lifecycle status and its timestamped history and enforces that status only
// moves forward along the fulfillment graph, except through the explicit
// administrative override path.
//
// Invariants:
//   - courier reference is set if and only if status reached ClaimedByCourier
//     (cancelled orders keep whatever assignment they had)
//   - every successful transition appends exactly one history entry
//   - no forward edge may be skipped
//   - a collection code exists from AwaitingCollection onward
type Order struct {
	id        kernel.UUID
	buyerID   kernel.UUID
	sellerID  kernel.UUID
	courierID *kernel.UUID
	siteID    *kernel.UUID

	status  Status
	total   kernel.Money
	history []StatusChange

	collectionCode         *string
	collectionCodeIssuedAt *time.Time

	commissionAmount *kernel.Money
	needsReview      bool
	stuck            bool

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Created status with an opening history
// entry. Buyer, seller, and total must be valid.
func NewOrder(id, buyerID, sellerID kernel.UUID, total kernel.Money) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:       id,
		buyerID:  buyerID,
		sellerID: sellerID,
		status:   Created,
		total:    total,
		history:  []StatusChange{{Status: Created, At: time.Now().UTC()}},
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any valid status and the persisted history,
// and verifies the status/courier consistency invariant.
func RestoreOrder(
	id, buyerID, sellerID kernel.UUID,
	courierID, siteID *kernel.UUID,
	status Status,
	total kernel.Money,
	history []StatusChange,
	collectionCode *string,
	collectionCodeIssuedAt *time.Time,
	commissionAmount *kernel.Money,
	needsReview, stuck bool,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
		status.Validate(),
		total.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:                     id,
		buyerID:                buyerID,
		sellerID:               sellerID,
		courierID:              courierID,
		siteID:                 siteID,
		status:                 status,
		total:                  total,
		history:                history,
		collectionCode:         collectionCode,
		collectionCodeIssuedAt: collectionCodeIssuedAt,
		commissionAmount:       commissionAmount,
		needsReview:            needsReview,
		stuck:                  stuck,
		guard:                  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the selling party's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// CourierID returns the assigned courier's identifier, nil if unclaimed.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// SiteID returns the destination pickup site, nil before release.
func (o *Order) SiteID() *kernel.UUID {
	return o.siteID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order's monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// History returns the ordered status-change history.
func (o *Order) History() []StatusChange {
	return o.history
}

// CollectionCode returns the issued collection code, nil before issuance.
func (o *Order) CollectionCode() *string {
	return o.collectionCode
}

// CollectionCodeIssuedAt returns the code issuance time, nil before issuance.
func (o *Order) CollectionCodeIssuedAt() *time.Time {
	return o.collectionCodeIssuedAt
}

// CommissionAmount returns the courier commission frozen on collection,
// nil until computed.
func (o *Order) CommissionAmount() *kernel.Money {
	return o.commissionAmount
}

// NeedsReview reports whether confirmation retries were exhausted and the
// order awaits administrative attention.
func (o *Order) NeedsReview() bool {
	return o.needsReview
}

// IsStuck reports whether the order has been flagged as idle past the
// configured threshold. Advisory only, never a transition.
func (o *Order) IsStuck() bool {
	return o.stuck
}

// LastChangedAt returns the timestamp of the latest status change.
func (o *Order) LastChangedAt() time.Time {
	if len(o.history) == 0 {
		return time.Time{}
	}
	return o.history[len(o.history)-1].At
}

// ReleaseForPickup moves the order from Created to AvailableForPickup and
// pins the destination pickup site.
func (o *Order) ReleaseForPickup(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	if o.status != Created {
		return errs.NewPolicyViolationError(o.status.String(), AvailableForPickup.String())
	}

	o.siteID = &siteID
	o.advance(AvailableForPickup)
	return nil
}

// Claim assigns the order to a courier and advances it to ClaimedByCourier.
// Fails with a ConflictError when the order is no longer claimable; the
// storage layer enforces the same condition atomically, so a domain-level
// conflict here mirrors what a racing caller would see.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status != AvailableForPickup || o.courierID != nil {
		return errs.NewConflictError("order", o.id.String())
	}

	o.courierID = &courierID
	o.advance(ClaimedByCourier)
	return nil
}

// TransitionTo advances the order one step along the forward graph.
// Skipping edges fails with PolicyViolationError; ClaimedByCourier and
// AwaitingCollection are reachable only through Claim and
// IssueCollectionCode respectively.
func (o *Order) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == ClaimedByCourier {
		return errs.NewValueIsInvalidErrorWithCause("target", ErrCourierRequired)
	}
	if target == AwaitingCollection {
		return errs.NewValueIsInvalidErrorWithCause("target", ErrCollectionCodeRequired)
	}
	if !o.status.CanTransitionTo(target) {
		return errs.NewPolicyViolationError(o.status.String(), target.String())
	}

	o.advance(target)
	return nil
}

// IssueCollectionCode records the buyer handover code and advances the order
// from AtSite to AwaitingCollection. The code's issuance time starts the
// expiry window checked at collection.
func (o *Order) IssueCollectionCode(code string, issuedAt time.Time) error {
	if code == "" {
		return errs.NewValueIsRequiredError("collection code")
	}
	if o.status != AtSite {
		return errs.NewPolicyViolationError(o.status.String(), AwaitingCollection.String())
	}

	issuedAt = issuedAt.UTC()
	o.collectionCode = &code
	o.collectionCodeIssuedAt = &issuedAt
	o.advance(AwaitingCollection)
	return nil
}

// ClearCollectionCode drops an unconsumed code so a fresh one can be issued.
// The order stays in AwaitingCollection; used by the expiry sweep.
func (o *Order) ClearCollectionCode() {
	o.collectionCode = nil
	o.collectionCodeIssuedAt = nil
}

// Override forces the order into target regardless of graph edges.
// This is the administrative escape hatch: it can cancel, rewind, or skip,
// but never into a status whose references the order does not carry.
// Terminal orders cannot be overridden.
func (o *Order) Override(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewPolicyViolationError(o.status.String(), target.String())
	}
	if target.RequiresSite() && o.siteID == nil {
		return errs.NewValueIsInvalidErrorWithCause("target", ErrSiteRequired)
	}
	if target.RequiresCourier() && o.courierID == nil {
		return errs.NewValueIsInvalidErrorWithCause("target", ErrCourierRequired)
	}

	o.advance(target)
	return nil
}

// SetCommissionAmount freezes the courier's computed delivery commission on
// the order record. Set exactly once, at collection.
func (o *Order) SetCommissionAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.commissionAmount = &amount
	return nil
}

// FlagForReview marks the order for administrative review after confirmation
// retries are exhausted. It does not change status.
func (o *Order) FlagForReview() {
	o.needsReview = true
}

// MarkStuck flags the order as idle past the configured threshold.
// Advisory bookkeeping for the stuck-order job; never a transition.
func (o *Order) MarkStuck() {
	o.stuck = true
}

// advance moves to the new status and appends the history entry.
// Callers are responsible for edge validation.
func (o *Order) advance(target Status) {
	o.status = target
	o.stuck = false
	o.history = append(o.history, StatusChange{Status: target, At: time.Now().UTC()})
}
