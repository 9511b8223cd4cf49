package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
)

// AccessCodeGenerator produces candidate workstation access codes.
type AccessCodeGenerator func() (kernel.AccessCode, error)

type CreateWorkstationCommandHandler struct {
	uowFactory WorkstationUoWFactory
	codes      AccessCodeGenerator
}

func NewCreateWorkstationCommandHandler(uowFactory WorkstationUoWFactory) CreateWorkstationCommandHandler {
	return NewCreateWorkstationCommandHandlerWithCodes(uowFactory, kernel.NewAccessCode)
}

// NewCreateWorkstationCommandHandlerWithCodes uses a custom access code source.
func NewCreateWorkstationCommandHandlerWithCodes(
	uowFactory WorkstationUoWFactory,
	codes AccessCodeGenerator,
) CreateWorkstationCommandHandler {
	return CreateWorkstationCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
	}
}

// Handle creates the workstation and returns its access code. A colliding
// code is regenerated up to maxCodeAttempts times.
func (h CreateWorkstationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWorkstationCommand,
) (kernel.AccessCode, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.AccessCode{}, err
	}
	if err := cmd.Actor().Authorize(access.ActionManageWorkstations); err != nil {
		return kernel.AccessCode{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.AccessCode{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkstationRepository()

	for range maxCodeAttempts {
		code, err := h.codes()
		if err != nil {
			return kernel.AccessCode{}, err
		}

		ws, err := workstation.NewWorkstation(cmd.WorkstationID(), cmd.Name(), code)
		if err != nil {
			return kernel.AccessCode{}, err
		}

		err = repo.Add(ctx, ws)
		if errors.Is(err, atelier.ErrAccessCodeIsTaken) {
			continue
		}
		if err != nil {
			return kernel.AccessCode{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return kernel.AccessCode{}, err
		}
		return code, nil
	}

	return kernel.AccessCode{}, ErrCodeGenerationExhausted
}
