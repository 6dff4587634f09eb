package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a request to decline a quote and cancel the
// order. A rejection reason is mandatory so the cancellation can be traced
// later in the order history.
//
// Example:
//
//	cmd, err := NewRejectOrderCommand(orderID, actorID, actor.RoleSalesRep, "client declined the estimate")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewRejectOrderCommandHandler(uowFactory, auditLog, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to reject order: %w", err)
//	}
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole actor.Role
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a new command to reject a quoted order.
// Validates the order ID, actor ID and actor role, and requires a non-blank
// rejection reason.
func NewRejectOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole actor.Role,
	reason string,
) (RejectOrderCommand, error) {
	command := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setActorRole(actorRole),
		command.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the ID of the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the user performing the rejection.
func (c RejectOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user performing the rejection.
func (c RejectOrderCommand) ActorRole() actor.Role {
	return c.actorRole
}

// Reason returns the mandatory rejection reason.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RejectOrderCommand) setActorRole(actorRole actor.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
