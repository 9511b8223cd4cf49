package commands

import (
	"context"
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/clock"
	"atelier/internal/pkg/errs"
)

// actionEnterMode names the gate check of a failed code in UnauthorizedError.
const actionEnterMode = "enter %s mode"

// EnterModeCommandHandler checks the typed code and switches the session.
// An unknown session id opens a new session. A wrong code fails with
// errs.UnauthorizedError and leaves the session as it was.
type EnterModeCommandHandler struct {
	uowFactory AccessUoWFactory
	sessions   ports.SessionRepository
	clock      clock.Clock
}

func NewEnterModeCommandHandler(
	uowFactory AccessUoWFactory,
	sessions ports.SessionRepository,
	c clock.Clock,
) EnterModeCommandHandler {
	return EnterModeCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		clock:      c,
	}
}

func (h EnterModeCommandHandler) Handle(ctx context.Context, cmd EnterModeCommand) (*access.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := loadSession(ctx, h.sessions, cmd.SessionID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	switch cmd.Mode() {
	case access.ModeManager:
		profile, profileErr := uow.WorkshopRepository().Profile(ctx)
		if profileErr != nil {
			return nil, profileErr
		}
		if !profile.AuthenticateManager(cmd.Code()) {
			return nil, denied(session, cmd.Mode())
		}
		session.EnterManager(profile.Subscription().IsActive(h.clock.Now()))
	case access.ModeWorkstation:
		ws, wsErr := uow.WorkstationRepository().GetByAccessCode(ctx, cmd.Code())
		if errors.Is(wsErr, errs.ErrObjectNotFound) {
			return nil, denied(session, cmd.Mode())
		}
		if wsErr != nil {
			return nil, wsErr
		}
		if err = session.EnterWorkstation(ws.ID()); err != nil {
			return nil, err
		}
	default:
		return nil, ErrModeCannotBeEntered
	}

	if err = h.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ExitModeCommandHandler returns the session to client mode. Exit always succeeds.
type ExitModeCommandHandler struct {
	sessions ports.SessionRepository
}

func NewExitModeCommandHandler(sessions ports.SessionRepository) ExitModeCommandHandler {
	return ExitModeCommandHandler{sessions: sessions}
}

func (h ExitModeCommandHandler) Handle(ctx context.Context, cmd ExitModeCommand) (*access.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := loadSession(ctx, h.sessions, cmd.SessionID())
	if err != nil {
		return nil, err
	}

	session.Exit()

	if err = h.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// NavigateCommandHandler moves the session, redirecting to the mode's
// default screen when the requested one is not allowed.
type NavigateCommandHandler struct {
	uowFactory AccessUoWFactory
	sessions   ports.SessionRepository
	clock      clock.Clock
}

func NewNavigateCommandHandler(
	uowFactory AccessUoWFactory,
	sessions ports.SessionRepository,
	c clock.Clock,
) NavigateCommandHandler {
	return NavigateCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		clock:      c,
	}
}

func (h NavigateCommandHandler) Handle(ctx context.Context, cmd NavigateCommand) (*access.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := loadSession(ctx, h.sessions, cmd.SessionID())
	if err != nil {
		return nil, err
	}

	active, err := subscriptionIsActive(ctx, h.uowFactory, h.clock)
	if err != nil {
		return nil, err
	}

	session.Navigate(cmd.Screen(), active)

	if err = h.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func loadSession(ctx context.Context, sessions ports.SessionRepository, id kernel.UUID) (*access.Session, error) {
	session, err := sessions.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return access.NewSession(id)
	}
	return session, err
}

func subscriptionIsActive(ctx context.Context, uowFactory AccessUoWFactory, c clock.Clock) (bool, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile, err := uow.WorkshopRepository().Profile(ctx)
	if err != nil {
		return false, err
	}
	return profile.Subscription().IsActive(c.Now()), nil
}

func denied(session *access.Session, mode access.Mode) error {
	return errs.NewUnauthorizedErrorWithCause(
		fmt.Sprintf(actionEnterMode, mode),
		session.Mode().String(),
		errs.NewValueIsInvalidError("code"),
	)
}
