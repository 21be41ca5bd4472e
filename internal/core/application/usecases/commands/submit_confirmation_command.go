package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSubmitConfirmationCommandIsNotConstructed = errors.New(
	"SubmitConfirmationCommand must be created via NewSubmitConfirmationCommand constructor",
)

// SubmitConfirmationCommand represents handover evidence submitted for an
// order: a seller-handover photo, arrival coordinates, or a buyer collection
// code. The note carries a free-text condition remark for photo evidence.
type SubmitConfirmationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	kind     confirmation.Kind
	evidence string
	note     string

	guard guard.ConstructorGuard
}

// NewSubmitConfirmationCommand creates a command carrying handover evidence.
// Manual confirmations cannot be submitted this way; they exist only on the
// administrative override path.
func NewSubmitConfirmationCommand(orderID, actorID kernel.UUID, kind confirmation.Kind, evidence, note string) (SubmitConfirmationCommand, error) {
	cmd := SubmitConfirmationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setKind(kind),
		cmd.setEvidence(evidence),
	); err != nil {
		return SubmitConfirmationCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitConfirmationCommandIsNotConstructed)
}

// OrderID returns the order the evidence belongs to.
func (c SubmitConfirmationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the agent submitting the evidence.
func (c SubmitConfirmationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Kind returns the evidence kind.
func (c SubmitConfirmationCommand) Kind() confirmation.Kind {
	return c.kind
}

// Evidence returns the raw evidence payload.
func (c SubmitConfirmationCommand) Evidence() string {
	return c.evidence
}

// Note returns the free-text condition remark.
func (c SubmitConfirmationCommand) Note() string {
	return c.note
}

func (c *SubmitConfirmationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitConfirmationCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *SubmitConfirmationCommand) setKind(kind confirmation.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if kind == confirmation.KindManual {
		return errs.NewValueIsInvalidError("kind")
	}

	c.kind = kind
	return nil
}

func (c *SubmitConfirmationCommand) setEvidence(evidence string) error {
	if evidence == "" {
		return errs.NewValueIsRequiredError("evidence")
	}

	c.evidence = evidence
	return nil
}
