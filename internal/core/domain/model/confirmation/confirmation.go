// Package confirmation contains the append-only evidence log backing every
// physical handover. Each accepted confirmation satisfies exactly one leg
// transition; rejected attempts are recorded too, so retry accounting and
// administrative review can see the full picture. Records are immutable once
// written.
package confirmation

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Kind identifies the type of handover evidence.
type Kind string

const (
	// KindOTP is a one-time numeric code matched against buyer input.
	KindOTP Kind = "OTP"
	// KindQR is a scanned code carrying the same payload as the OTP.
	KindQR Kind = "QR"
	// KindGPS is a courier-submitted coordinate pair checked against the
	// site's registered location.
	KindGPS Kind = "GPS"
	// KindPhoto is photographic proof of the seller handover.
	KindPhoto Kind = "PHOTO"
	// KindManual marks an administrative override. Kept in the same log so
	// forced transitions are distinguishable from automated confirmations.
	KindManual Kind = "MANUAL"
)

// ErrConfirmationIsNotConstructed is returned when using an improperly
// initialized Confirmation.
var ErrConfirmationIsNotConstructed = errors.New(
	"Confirmation must be created via NewConfirmation or RestoreConfirmation")

// Validate checks that the kind belongs to the closed set.
func (k Kind) Validate() error {
	switch k {
	case KindOTP, KindQR, KindGPS, KindPhoto, KindManual:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%q is not a valid confirmation kind", string(k)))
	}
}

// String returns the stable wire representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// KindFromString resolves a wire string to its Kind value. Manual entries are
// produced only by the override path and are not accepted from callers.
func KindFromString(s string) (Kind, error) {
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	if k == KindManual {
		return "", errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("manual confirmations cannot be submitted directly"))
	}
	return k, nil
}

// Confirmation is one immutable entry of the handover evidence log.
type Confirmation struct {
	id         kernel.UUID
	orderID    kernel.UUID
	kind       Kind
	evidence   string
	note       string
	verifierID kernel.UUID
	accepted   bool
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewConfirmation records a verification attempt for an order.
// Evidence payload may be empty only for manual overrides, where the note
// carries the administrator's justification instead.
func NewConfirmation(
	id, orderID kernel.UUID,
	kind Kind,
	evidence, note string,
	verifierID kernel.UUID,
	accepted bool,
) (*Confirmation, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		kind.Validate(),
		verifierID.Validate(),
	); err != nil {
		return nil, err
	}

	if evidence == "" && kind != KindManual {
		return nil, errs.NewValueIsRequiredError("evidence")
	}
	if kind == KindManual && note == "" {
		return nil, errs.NewValueIsRequiredError("justification")
	}

	return &Confirmation{
		id:         id,
		orderID:    orderID,
		kind:       kind,
		evidence:   evidence,
		note:       note,
		verifierID: verifierID,
		accepted:   accepted,
		createdAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreConfirmation reconstructs a Confirmation from persistent storage.
func RestoreConfirmation(
	id, orderID kernel.UUID,
	kind Kind,
	evidence, note string,
	verifierID kernel.UUID,
	accepted bool,
	createdAt time.Time,
) (*Confirmation, error) {
	c, err := NewConfirmation(id, orderID, kind, evidence, note, verifierID, accepted)
	if err != nil {
		return nil, err
	}

	c.createdAt = createdAt
	return c, nil
}

// Validate ensures the Confirmation instance was properly constructed.
func (c *Confirmation) Validate() error {
	if c == nil {
		return ErrConfirmationIsNotConstructed
	}
	return c.guard.Validate(ErrConfirmationIsNotConstructed)
}

// ID returns the confirmation's unique identifier.
func (c *Confirmation) ID() kernel.UUID {
	return c.id
}

// OrderID returns the order this confirmation belongs to.
func (c *Confirmation) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the evidence kind.
func (c *Confirmation) Kind() Kind {
	return c.kind
}

// Evidence returns the raw evidence payload.
func (c *Confirmation) Evidence() string {
	return c.evidence
}

// Note returns the free-text condition note or override justification.
func (c *Confirmation) Note() string {
	return c.note
}

// VerifierID returns the identity of the actor who submitted the evidence.
func (c *Confirmation) VerifierID() kernel.UUID {
	return c.verifierID
}

// IsAccepted reports whether the evidence passed verification.
func (c *Confirmation) IsAccepted() bool {
	return c.accepted
}

// CreatedAt returns the verification timestamp.
func (c *Confirmation) CreatedAt() time.Time {
	return c.createdAt
}
