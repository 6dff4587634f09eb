package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/checklist"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrSetChecklistStageCommandIsNotConstructed = errors.New(
	"SetChecklistStageCommand must be created via NewSetChecklistStageCommand constructor",
)

// SetChecklistStageCommand represents a request to mark one production stage
// of an order as done or not done. Stage flags can be toggled in any sequence
// while the order is on the floor.
//
// Example:
//
//	cmd, err := NewSetChecklistStageCommand(orderID, workerID, actor.RoleProduction, checklist.StageSewing, true)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewSetChecklistStageCommandHandler(uowFactory, auditLog, logger)
//	result, err := handler.Handle(ctx, cmd)
type SetChecklistStageCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole actor.Role
	stage     checklist.Stage
	done      bool

	guard guard.ConstructorGuard
}

// NewSetChecklistStageCommand creates a new command to set one checklist
// stage flag. Validates the IDs, the role and the stage.
func NewSetChecklistStageCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole actor.Role,
	stage checklist.Stage,
	done bool,
) (SetChecklistStageCommand, error) {
	command := SetChecklistStageCommand{
		done:  done,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setActorRole(actorRole),
		command.setStage(stage),
	); err != nil {
		return SetChecklistStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetChecklistStageCommandIsNotConstructed if validation fails.
func (c SetChecklistStageCommand) Validate() error {
	return c.guard.Validate(ErrSetChecklistStageCommandIsNotConstructed)
}

// OrderID returns the ID of the order whose checklist is updated.
func (c SetChecklistStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the user updating the checklist.
func (c SetChecklistStageCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user updating the checklist.
func (c SetChecklistStageCommand) ActorRole() actor.Role {
	return c.actorRole
}

// Stage returns the production stage to update.
func (c SetChecklistStageCommand) Stage() checklist.Stage {
	return c.stage
}

// Done returns the new value for the stage flag.
func (c SetChecklistStageCommand) Done() bool {
	return c.done
}

func (c *SetChecklistStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetChecklistStageCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *SetChecklistStageCommand) setActorRole(actorRole actor.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *SetChecklistStageCommand) setStage(stage checklist.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}
