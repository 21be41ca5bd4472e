package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSubmitPaymentProofCommandIsNotConstructed = errors.New(
	"SubmitPaymentProofCommand must be created via NewSubmitPaymentProofCommand constructor",
)

// SubmitPaymentProofCommand represents an agent reporting cash collected for
// a manually created order.
type SubmitPaymentProofCommand struct { //nolint:recvcheck //using for validation
	proofID kernel.UUID
	orderID kernel.UUID
	agentID kernel.UUID
	amount  kernel.Money
	method  string

	guard guard.ConstructorGuard
}

// NewSubmitPaymentProofCommand creates a command to record a cash collection
// claim.
func NewSubmitPaymentProofCommand(proofID, orderID, agentID kernel.UUID, amount kernel.Money, method string) (SubmitPaymentProofCommand, error) {
	cmd := SubmitPaymentProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProofID(proofID),
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
	); err != nil {
		return SubmitPaymentProofCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentProofCommandIsNotConstructed)
}

// ProofID returns the unique identifier for the proof.
func (c SubmitPaymentProofCommand) ProofID() kernel.UUID {
	return c.proofID
}

// OrderID returns the order the cash was collected for.
func (c SubmitPaymentProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the collecting agent.
func (c SubmitPaymentProofCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Amount returns the claimed amount.
func (c SubmitPaymentProofCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the collection channel.
func (c SubmitPaymentProofCommand) Method() string {
	return c.method
}

func (c *SubmitPaymentProofCommand) setProofID(proofID kernel.UUID) error {
	if err := proofID.Validate(); err != nil {
		return err
	}

	c.proofID = proofID
	return nil
}

func (c *SubmitPaymentProofCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitPaymentProofCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *SubmitPaymentProofCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	c.amount = amount
	return nil
}

func (c *SubmitPaymentProofCommand) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}

	c.method = method
	return nil
}
