// Package order contains the Order aggregate and its lifecycle state machine.
// The aggregate is the authoritative ledger of an order's fulfillment status:
// it owns the status value and the timestamped history, enforces forward-only
// movement along the fulfillment graph, and carries the claim, collection-code,
// and review bookkeeping the coordination engine depends on.
package order
