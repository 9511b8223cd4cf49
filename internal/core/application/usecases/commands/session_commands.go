package commands

import (
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrSessionCommandIsNotConstructed = errors.New(
		"session command must be created via its constructor",
	)
	ErrAccessCodeIsRequired = errs.NewValueIsRequiredError("code")
	ErrModeCannotBeEntered  = errs.NewValueIsInvalidError("mode must be manager or workstation")
)

// EnterModeCommand asks to switch a device session to manager or
// workstation mode with the code typed on the device.
//
// Example:
//
//	cmd, err := NewEnterModeCommand(sessionID, access.ModeWorkstation, "poste-7k2q")
//	session, err := handler.Handle(ctx, cmd)
type EnterModeCommand struct {
	sessionID kernel.UUID
	mode      access.Mode
	code      string

	guard guard.ConstructorGuard
}

func NewEnterModeCommand(sessionID kernel.UUID, mode access.Mode, code string) (EnterModeCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return EnterModeCommand{}, err
	}
	if mode != access.ModeManager && mode != access.ModeWorkstation {
		return EnterModeCommand{}, ErrModeCannotBeEntered
	}
	if code == "" {
		return EnterModeCommand{}, ErrAccessCodeIsRequired
	}
	return EnterModeCommand{
		sessionID: sessionID,
		mode:      mode,
		code:      code,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EnterModeCommand) Validate() error {
	return c.guard.Validate(ErrSessionCommandIsNotConstructed)
}

func (c EnterModeCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c EnterModeCommand) Mode() access.Mode {
	return c.mode
}

func (c EnterModeCommand) Code() string {
	return c.code
}

// ExitModeCommand returns a session to client mode.
type ExitModeCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewExitModeCommand(sessionID kernel.UUID) (ExitModeCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return ExitModeCommand{}, err
	}
	return ExitModeCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c ExitModeCommand) Validate() error {
	return c.guard.Validate(ErrSessionCommandIsNotConstructed)
}

func (c ExitModeCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// NavigateCommand moves a session to a screen, subject to the mode's allow-list.
type NavigateCommand struct {
	sessionID kernel.UUID
	screen    access.Screen

	guard guard.ConstructorGuard
}

func NewNavigateCommand(sessionID kernel.UUID, screen string) (NavigateCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return NavigateCommand{}, err
	}
	parsed, err := access.ParseScreen(screen)
	if err != nil {
		return NavigateCommand{}, err
	}
	return NavigateCommand{sessionID: sessionID, screen: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (c NavigateCommand) Validate() error {
	return c.guard.Validate(ErrSessionCommandIsNotConstructed)
}

func (c NavigateCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c NavigateCommand) Screen() access.Screen {
	return c.screen
}
