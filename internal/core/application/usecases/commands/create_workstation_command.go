package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/guard"
)

var ErrCreateWorkstationCommandIsNotConstructed = errors.New(
	"CreateWorkstationCommand must be created via NewCreateWorkstationCommand constructor",
)

// CreateWorkstationCommand registers a production post. Its access code is generated by the handler.
type CreateWorkstationCommand struct {
	actor         access.Actor
	workstationID kernel.UUID
	name          string

	guard guard.ConstructorGuard
}

func NewCreateWorkstationCommand(
	actor access.Actor,
	workstationID kernel.UUID,
	name string,
) (CreateWorkstationCommand, error) {
	if err := workstationID.Validate(); err != nil {
		return CreateWorkstationCommand{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateWorkstationCommand{}, workstation.ErrNameIsRequired
	}
	return CreateWorkstationCommand{
		actor:         actor,
		workstationID: workstationID,
		name:          name,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWorkstationCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkstationCommandIsNotConstructed)
}

func (c CreateWorkstationCommand) Actor() access.Actor {
	return c.actor
}

func (c CreateWorkstationCommand) WorkstationID() kernel.UUID {
	return c.workstationID
}

func (c CreateWorkstationCommand) Name() string {
	return c.name
}
