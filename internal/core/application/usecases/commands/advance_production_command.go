package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrAdvanceProductionCommandIsNotConstructed = errors.New(
	"AdvanceProductionCommand must be created via NewAdvanceProductionCommand constructor",
)

// AdvanceProductionCommand represents a request to move an order along the
// production pipeline. The caller names both the status it believes the order
// is in and the status it wants to reach; the expected status doubles as an
// optimistic concurrency token, so two production workers racing over the
// same order cannot both win.
//
// Example:
//
//	cmd, err := NewAdvanceProductionCommand(
//	    orderID, actorID, actor.RoleProduction,
//	    order.StatusApproved, order.StatusInProduction, "",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewAdvanceProductionCommandHandler(uowFactory, auditLog, logger)
//	result, err := handler.Handle(ctx, cmd)
type AdvanceProductionCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actorID    kernel.UUID
	actorRole  actor.Role
	fromStatus order.Status
	toStatus   order.Status
	note       string

	guard guard.ConstructorGuard
}

// NewAdvanceProductionCommand creates a new command to advance an order
// through production. Validates the IDs, the role and both statuses; whether
// the pair forms an allowed production step is decided by the handler.
func NewAdvanceProductionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole actor.Role,
	fromStatus order.Status,
	toStatus order.Status,
	note string,
) (AdvanceProductionCommand, error) {
	command := AdvanceProductionCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setActorRole(actorRole),
		command.setFromStatus(fromStatus),
		command.setToStatus(toStatus),
	); err != nil {
		return AdvanceProductionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceProductionCommandIsNotConstructed if validation fails.
func (c AdvanceProductionCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceProductionCommandIsNotConstructed)
}

// OrderID returns the ID of the order to advance.
func (c AdvanceProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the user performing the transition.
func (c AdvanceProductionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user performing the transition.
func (c AdvanceProductionCommand) ActorRole() actor.Role {
	return c.actorRole
}

// FromStatus returns the status the caller expects the order to be in.
func (c AdvanceProductionCommand) FromStatus() order.Status {
	return c.fromStatus
}

// ToStatus returns the status the order should move to.
func (c AdvanceProductionCommand) ToStatus() order.Status {
	return c.toStatus
}

// Note returns the optional free-text note for the history entry.
func (c AdvanceProductionCommand) Note() string {
	return c.note
}

func (c *AdvanceProductionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceProductionCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AdvanceProductionCommand) setActorRole(actorRole actor.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *AdvanceProductionCommand) setFromStatus(fromStatus order.Status) error {
	if err := fromStatus.Validate(); err != nil {
		return err
	}

	c.fromStatus = fromStatus
	return nil
}

func (c *AdvanceProductionCommand) setToStatus(toStatus order.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}

	c.toStatus = toStatus
	return nil
}
