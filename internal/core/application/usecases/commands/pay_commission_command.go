package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrPayCommissionCommandIsNotConstructed = errors.New(
	"PayCommissionCommand must be created via NewPayCommissionCommand constructor",
)

// PayCommissionCommand represents a request to settle the sales rep
// commission of a delivered order. Paying twice is harmless: the commission
// stays paid and only its payment timestamp is refreshed.
//
// Example:
//
//	cmd, err := NewPayCommissionCommand(orderID, managerID, actor.RoleManager)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewPayCommissionCommandHandler(uowFactory, auditLog, logger)
//	paid, err := handler.Handle(ctx, cmd)
type PayCommissionCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole actor.Role

	guard guard.ConstructorGuard
}

// NewPayCommissionCommand creates a new command to pay out a commission.
// Validates the order ID, actor ID and actor role.
func NewPayCommissionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole actor.Role,
) (PayCommissionCommand, error) {
	command := PayCommissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setActorRole(actorRole),
	); err != nil {
		return PayCommissionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPayCommissionCommandIsNotConstructed if validation fails.
func (c PayCommissionCommand) Validate() error {
	return c.guard.Validate(ErrPayCommissionCommandIsNotConstructed)
}

// OrderID returns the ID of the order whose commission is paid.
func (c PayCommissionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the user paying the commission.
func (c PayCommissionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user paying the commission.
func (c PayCommissionCommand) ActorRole() actor.Role {
	return c.actorRole
}

func (c *PayCommissionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayCommissionCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *PayCommissionCommand) setActorRole(actorRole actor.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
