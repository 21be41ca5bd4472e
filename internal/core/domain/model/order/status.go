package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment order.
// It implements a state machine whose values only ever move forward along the
// fulfillment graph, except for the administrative override edge to Cancelled.
//
// Forward graph:
//
//	CREATED → AVAILABLE_FOR_PICKUP → CLAIMED_BY_COURIER → EN_ROUTE_TO_SELLER
//	        → AT_SELLER → PICKED_UP → EN_ROUTE_TO_SITE → AT_SITE
//	        → AWAITING_COLLECTION → COLLECTED_BY_BUYER
//
// CANCELLED is a parallel terminal state reachable from any non-terminal
// status, but only through an explicit administrative override.
//
// Status is a value object that validates transitions and provides the exact
// wire strings required by the external API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a purchased order before the seller
	// releases it for courier pickup.
	Created

	// AvailableForPickup marks an order released by the seller and waiting to
	// be claimed by exactly one courier.
	AvailableForPickup

	// ClaimedByCourier marks an order owned by a single courier.
	// From this status onward the order always carries a courier reference.
	ClaimedByCourier

	// EnRouteToSeller marks the courier traveling to the seller.
	EnRouteToSeller

	// AtSeller marks the courier arrived at the seller, awaiting the photo
	// handover confirmation.
	AtSeller

	// PickedUp marks the goods in the courier's possession.
	PickedUp

	// EnRouteToSite marks the courier traveling to the pickup site.
	EnRouteToSite

	// AtSite marks the goods present at the pickup site; site capacity is
	// occupied while an order is in this status or AwaitingCollection.
	AtSite

	// AwaitingCollection marks an order with an issued collection code,
	// waiting for the buyer.
	AwaitingCollection

	// CollectedByBuyer is the successful terminal status.
	CollectedByBuyer

	// Cancelled is the administrative terminal status, reachable only via an
	// explicit override transition.
	Cancelled
)

// statusStrings maps every Status to its stable wire representation.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "UNKNOWN",
		Created:            "CREATED",
		AvailableForPickup: "AVAILABLE_FOR_PICKUP",
		ClaimedByCourier:   "CLAIMED_BY_COURIER",
		EnRouteToSeller:    "EN_ROUTE_TO_SELLER",
		AtSeller:           "AT_SELLER",
		PickedUp:           "PICKED_UP",
		EnRouteToSite:      "EN_ROUTE_TO_SITE",
		AtSite:             "AT_SITE",
		AwaitingCollection: "AWAITING_COLLECTION",
		CollectedByBuyer:   "COLLECTED_BY_BUYER",
		Cancelled:          "CANCELLED",
	}
}

// forwardEdges maps each status to its single direct successor in the graph.
// Terminal statuses have no entry.
func forwardEdges() map[Status]Status {
	return map[Status]Status{
		Created:            AvailableForPickup,
		AvailableForPickup: ClaimedByCourier,
		ClaimedByCourier:   EnRouteToSeller,
		EnRouteToSeller:    AtSeller,
		AtSeller:           PickedUp,
		PickedUp:           EnRouteToSite,
		EnRouteToSite:      AtSite,
		AtSite:             AwaitingCollection,
		AwaitingCollection: CollectedByBuyer,
	}
}

// StatusFromString resolves a wire string to its Status value.
// Any value outside the closed enum is rejected rather than coerced.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value belongs to the closed enum.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stable wire representation of the status.
// Implements fmt.Stringer; safe on any value, invalid ones yield "UNKNOWN".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the direct forward successor of the status.
// The second return value is false for terminal statuses.
func (s Status) Next() (Status, bool) {
	next, ok := forwardEdges()[s]
	return next, ok
}

// CanTransitionTo reports whether target is the direct forward edge from the
// current status. The Cancelled edge is deliberately excluded: cancellation
// is only reachable through the administrative override path.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := forwardEdges()[s]
	return ok && next == target
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == CollectedByBuyer || s == Cancelled
}

// OccupiesSite reports whether an order in this status holds a capacity slot
// at its pickup site.
func (s Status) OccupiesSite() bool {
	return s == AtSite || s == AwaitingCollection
}

// RequiresCourier reports whether the status implies an assigned courier.
// Statuses at or past ClaimedByCourier carry a courier reference; Cancelled
// orders may or may not, depending on how far they progressed.
func (s Status) RequiresCourier() bool {
	return s >= ClaimedByCourier && s != Cancelled
}

// RequiresSite reports whether the status implies a pinned pickup site.
// The site is pinned at release and never removed afterwards; Cancelled
// orders may or may not carry one, depending on how far they progressed.
func (s Status) RequiresSite() bool {
	return s >= AvailableForPickup && s != Cancelled
}

// ValidateCanHaveCourier validates consistency between status and courier
// assignment: an order has a courier if and only if it progressed to
// ClaimedByCourier or beyond (cancelled orders are exempt either way).
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if s == Cancelled {
		return nil
	}

	if courier && s < ClaimedByCourier {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot have an assigned courier", s.String()))
	}

	if !courier && s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s requires an assigned courier", s.String()))
	}

	return nil
}
