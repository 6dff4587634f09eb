package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a request to hand a finished order over to
// the client, closing the main lifecycle and making the order eligible for
// commission payout.
//
// Example:
//
//	cmd, err := NewDeliverOrderCommand(orderID, actorID, actor.RoleProduction, "picked up in store")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewDeliverOrderCommandHandler(uowFactory, auditLog, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to deliver order: %w", err)
//	}
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole actor.Role
	note      string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a new command to deliver a finished order.
// Validates the order ID, actor ID and actor role. The note is optional.
func NewDeliverOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole actor.Role,
	note string,
) (DeliverOrderCommand, error) {
	command := DeliverOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setActorRole(actorRole),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverOrderCommandIsNotConstructed if validation fails.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the ID of the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the user recording the delivery.
func (c DeliverOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user recording the delivery.
func (c DeliverOrderCommand) ActorRole() actor.Role {
	return c.actorRole
}

// Note returns the optional free-text note for the history entry.
func (c DeliverOrderCommand) Note() string {
	return c.note
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *DeliverOrderCommand) setActorRole(actorRole actor.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
