package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents a request to accept a quote and move the
// order into the production queue. Carries the acting user so the handler can
// enforce who is allowed to decide on a quote.
//
// Example:
//
//	cmd, err := NewApproveOrderCommand(orderID, actorID, actor.RoleManager, "client confirmed fabric")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewApproveOrderCommandHandler(uowFactory, auditLog, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to approve order: %w", err)
//	}
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole actor.Role
	note      string

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a new command to approve a quoted order.
// Validates the order ID, actor ID and actor role. The note is optional and
// is recorded on the resulting history entry.
func NewApproveOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole actor.Role,
	note string,
) (ApproveOrderCommand, error) {
	command := ApproveOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setActorRole(actorRole),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApproveOrderCommandIsNotConstructed if validation fails.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the ID of the order to approve.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the user performing the approval.
func (c ApproveOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user performing the approval.
func (c ApproveOrderCommand) ActorRole() actor.Role {
	return c.actorRole
}

// Note returns the optional free-text note for the history entry.
func (c ApproveOrderCommand) Note() string {
	return c.note
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ApproveOrderCommand) setActorRole(actorRole actor.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
