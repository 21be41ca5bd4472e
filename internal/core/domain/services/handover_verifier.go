package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Verification failure reasons. These mark a rejected attempt, not a broken
// request: the caller records them in the evidence log and counts them toward
// the retry limit.
var (
	// ErrCodeMismatch is returned when the submitted collection code does not
	// match the one issued for the order.
	ErrCodeMismatch = errors.New("collection code does not match")
	// ErrCodeExpired is returned when the collection code is past its validity
	// window.
	ErrCodeExpired = errors.New("collection code has expired")
	// ErrOutsideGeofence is returned when the submitted coordinates are farther
	// from the site than the configured tolerance.
	ErrOutsideGeofence = errors.New("coordinates are outside the site geofence")
	// ErrEvidenceMissing is returned when the evidence payload is empty.
	ErrEvidenceMissing = errors.New("evidence payload is missing")
)

// HandoverVerifier is a domain service that checks handover evidence against
// the policy configured at startup.
//
// Business rules:
//   - Collection codes match exactly and only within their validity window
//   - GPS coordinates must fall within a fixed radius of the site's
//     registered location
//   - Photo evidence is accepted when a stored reference is present;
//     no image analysis happens here
//
// The verifier is stateless. A failed check is an outcome, not an error in
// the transport sense: callers log it and decide whether retries remain.
type HandoverVerifier struct {
	gpsToleranceMeters float64
	codeTTL            time.Duration
}

// NewHandoverVerifier creates a verifier with the given GPS tolerance in
// meters and collection code validity window.
func NewHandoverVerifier(gpsToleranceMeters float64, codeTTL time.Duration) (HandoverVerifier, error) {
	if gpsToleranceMeters <= 0 {
		return HandoverVerifier{}, errs.NewValueIsInvalidError("gpsToleranceMeters")
	}
	if codeTTL <= 0 {
		return HandoverVerifier{}, errs.NewValueIsInvalidError("codeTTL")
	}

	return HandoverVerifier{
		gpsToleranceMeters: gpsToleranceMeters,
		codeTTL:            codeTTL,
	}, nil
}

// VerifyCollectionCode checks a submitted code against the issued one.
// Expiry is checked before the match so an expired code never leaks whether
// it was correct.
func (v HandoverVerifier) VerifyCollectionCode(issued string, issuedAt time.Time, submitted string, now time.Time) error {
	if submitted == "" {
		return ErrEvidenceMissing
	}
	if now.Sub(issuedAt) > v.codeTTL {
		return ErrCodeExpired
	}
	if subtle.ConstantTimeCompare([]byte(issued), []byte(submitted)) != 1 {
		return ErrCodeMismatch
	}

	return nil
}

// VerifyProximity checks that the submitted coordinates fall within the
// configured radius of the site's registered location.
func (v HandoverVerifier) VerifyProximity(submitted, siteLocation kernel.Location) error {
	if err := errors.Join(submitted.Validate(), siteLocation.Validate()); err != nil {
		return err
	}

	distance, err := submitted.DistanceMeters(siteLocation)
	if err != nil {
		return err
	}

	if distance > v.gpsToleranceMeters {
		return ErrOutsideGeofence
	}

	return nil
}

// VerifyPhoto accepts photographic evidence when a stored reference exists.
// The reference points at an already-uploaded object; content review is a
// human concern downstream.
func (v HandoverVerifier) VerifyPhoto(reference string) error {
	if reference == "" {
		return ErrEvidenceMissing
	}

	return nil
}
