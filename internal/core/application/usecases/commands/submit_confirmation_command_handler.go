package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// SubmitConfirmationCommandHandler is the confirmation engine. It checks
// handover evidence, appends the attempt to the evidence log, and on success
// advances the order ledger together with its side effects:
//
//   - photo at the seller moves the order to picked up
//   - GPS arrival moves the order to at site and takes a capacity slot,
//     earning the site manager's assisted-purchase commission
//   - a collection code moves the order to collected, frees the slot, and
//     earns the courier's delivery commission
//
// Everything a successful confirmation touches commits as one unit. A
// rejected attempt commits only the log entry and the retry accounting; the
// order itself does not move.
type SubmitConfirmationCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	verifier   services.HandoverVerifier
	policy     CommissionPolicy
	maxRetries int
}

// NewSubmitConfirmationCommandHandler creates the confirmation engine handler.
// maxRetries bounds rejected attempts per evidence kind before the order is
// flagged for administrative review.
func NewSubmitConfirmationCommandHandler(
	uowFactory FulfillmentUoWFactory,
	verifier services.HandoverVerifier,
	policy CommissionPolicy,
	maxRetries int,
) (SubmitConfirmationCommandHandler, error) {
	if err := policy.Validate(); err != nil {
		return SubmitConfirmationCommandHandler{}, err
	}
	if maxRetries <= 0 {
		return SubmitConfirmationCommandHandler{}, errs.NewValueIsInvalidError("maxRetries")
	}

	return SubmitConfirmationCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		policy:     policy,
		maxRetries: maxRetries,
	}, nil
}

// Handle processes a confirmation submission.
// A verification failure is returned as a validation error after the rejected
// attempt has been committed to the log; callers may retry with corrected
// evidence until the retry limit flags the order for review.
func (h *SubmitConfirmationCommandHandler) Handle(ctx context.Context, cmd SubmitConfirmationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.authorize(ctx, uow, aggregate, cmd); err != nil {
		return err
	}

	verdict := h.verify(ctx, uow, aggregate, cmd)
	if verdict != nil && !isRejection(verdict) {
		return verdict
	}

	entry, err := confirmation.NewConfirmation(
		kernel.NewUUID(), aggregate.ID(), cmd.Kind(), cmd.Evidence(), cmd.Note(), cmd.ActorID(), verdict == nil)
	if err != nil {
		return err
	}

	if err = uow.ConfirmationRepository().Add(ctx, entry); err != nil {
		return err
	}

	if verdict != nil {
		return h.commitRejection(ctx, uow, aggregate, cmd.Kind(), verdict)
	}

	if err = h.applyTransition(ctx, uow, aggregate, cmd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// authorize checks that the actor is entitled to submit this evidence kind
// for this order.
func (h *SubmitConfirmationCommandHandler) authorize(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order, cmd SubmitConfirmationCommand) error {
	actor, err := uow.AgentRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	switch cmd.Kind() {
	case confirmation.KindPhoto, confirmation.KindGPS:
		if aggregate.CourierID() == nil || !aggregate.CourierID().IsEqual(cmd.ActorID()) {
			return errs.NewAuthorizationError(cmd.ActorID().String(), "submit courier evidence")
		}
	case confirmation.KindOTP, confirmation.KindQR:
		if actor.Role() != agent.RoleSiteManager || aggregate.SiteID() == nil || !actor.ManagesSite(*aggregate.SiteID()) {
			return errs.NewAuthorizationError(cmd.ActorID().String(), "verify buyer collection")
		}
	}

	return nil
}

// verify runs the kind-specific check. A rejection sentinel means the attempt
// was checked and failed; any other error is infrastructural.
func (h *SubmitConfirmationCommandHandler) verify(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order, cmd SubmitConfirmationCommand) error {
	switch cmd.Kind() {
	case confirmation.KindPhoto:
		if aggregate.Status() != order.AtSeller {
			return errs.NewPolicyViolationError(aggregate.Status().String(), order.PickedUp.String())
		}
		return h.verifier.VerifyPhoto(cmd.Evidence())

	case confirmation.KindGPS:
		if aggregate.Status() != order.EnRouteToSite {
			return errs.NewPolicyViolationError(aggregate.Status().String(), order.AtSite.String())
		}
		// Orders restored from legacy rows may lack a site pin.
		if aggregate.SiteID() == nil {
			return errs.NewValidationError("destination site")
		}
		submitted, err := parseCoordinates(cmd.Evidence())
		if err != nil {
			return err
		}
		siteAggregate, err := uow.SiteRepository().Get(ctx, *aggregate.SiteID())
		if err != nil {
			return err
		}
		return h.verifier.VerifyProximity(submitted, siteAggregate.Location())

	case confirmation.KindOTP, confirmation.KindQR:
		if aggregate.Status() != order.AwaitingCollection {
			return errs.NewPolicyViolationError(aggregate.Status().String(), order.CollectedByBuyer.String())
		}
		if aggregate.CollectionCode() == nil || aggregate.CollectionCodeIssuedAt() == nil {
			return errs.NewValidationError("collection code")
		}
		return h.verifier.VerifyCollectionCode(
			*aggregate.CollectionCode(), *aggregate.CollectionCodeIssuedAt(), cmd.Evidence(), time.Now().UTC())

	default:
		return errs.NewValueIsInvalidError("kind")
	}
}

// commitRejection persists the failed attempt and the retry accounting, then
// surfaces the rejection as a validation error.
func (h *SubmitConfirmationCommandHandler) commitRejection(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order, kind confirmation.Kind, verdict error) error {
	rejected, err := uow.ConfirmationRepository().CountRejected(ctx, aggregate.ID(), kind)
	if err != nil {
		return err
	}

	if rejected >= h.maxRetries && !aggregate.NeedsReview() {
		aggregate.FlagForReview()
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return errs.NewValidationErrorWithCause(kind.String(), verdict)
}

// applyTransition advances the ledger and its coupled side effects for an
// accepted confirmation.
func (h *SubmitConfirmationCommandHandler) applyTransition(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order, cmd SubmitConfirmationCommand) error {
	expected := aggregate.Status()

	switch cmd.Kind() {
	case confirmation.KindPhoto:
		if err := aggregate.TransitionTo(order.PickedUp); err != nil {
			return err
		}
		return uow.OrderRepository().UpdateWhereStatus(ctx, aggregate, expected)

	case confirmation.KindGPS:
		// Slot and ledger move commit together or not at all. A full site
		// aborts the whole submission, including the log entry.
		if err := uow.SiteRepository().AcquireSlot(ctx, *aggregate.SiteID()); err != nil {
			return err
		}
		if err := aggregate.TransitionTo(order.AtSite); err != nil {
			return err
		}
		if err := uow.OrderRepository().UpdateWhereStatus(ctx, aggregate, expected); err != nil {
			return err
		}
		return h.earnAssistedPurchase(ctx, uow, aggregate)

	case confirmation.KindOTP, confirmation.KindQR:
		if err := aggregate.TransitionTo(order.CollectedByBuyer); err != nil {
			return err
		}
		aggregate.ClearCollectionCode()

		record, err := ensureCommission(
			ctx, uow.CommissionRepository(), h.policy, *aggregate.CourierID(), aggregate, commission.TypeDelivery)
		if err != nil {
			return err
		}
		if err = aggregate.SetCommissionAmount(record.Amount()); err != nil {
			return err
		}
		if err = uow.OrderRepository().UpdateWhereStatus(ctx, aggregate, expected); err != nil {
			return err
		}
		return uow.SiteRepository().ReleaseSlot(ctx, *aggregate.SiteID())

	default:
		return errs.NewValueIsInvalidError("kind")
	}
}

// earnAssistedPurchase books the site manager's cut on arrival. Sites without
// a registered manager simply earn nothing.
func (h *SubmitConfirmationCommandHandler) earnAssistedPurchase(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order) error {
	manager, err := uow.AgentRepository().GetManagerForSite(ctx, *aggregate.SiteID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	_, err = ensureCommission(
		ctx, uow.CommissionRepository(), h.policy, manager.ID(), aggregate, commission.TypeAssistedPurchase)
	return err
}

// isRejection reports whether the verification error marks a checked-and-
// failed attempt rather than an infrastructural failure.
func isRejection(err error) bool {
	return errors.Is(err, services.ErrCodeMismatch) ||
		errors.Is(err, services.ErrCodeExpired) ||
		errors.Is(err, services.ErrOutsideGeofence) ||
		errors.Is(err, services.ErrEvidenceMissing) ||
		errors.Is(err, errs.ErrValidation)
}

// parseCoordinates reads a "lat,lon" payload into a location.
func parseCoordinates(evidence string) (kernel.Location, error) {
	parts := strings.Split(evidence, ",")
	if len(parts) != 2 {
		return kernel.Location{}, errs.NewValidationError("coordinates")
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return kernel.Location{}, errs.NewValidationErrorWithCause("coordinates", err)
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return kernel.Location{}, errs.NewValidationErrorWithCause("coordinates", err)
	}

	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return kernel.Location{}, errs.NewValidationErrorWithCause("coordinates", err)
	}

	return location, nil
}
