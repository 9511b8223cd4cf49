package commands_test

import (
	"strings"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (w *workshop) enter(t *testing.T, sessionID kernel.UUID, mode access.Mode, code string) (*access.Session, error) {
	t.Helper()
	cmd, err := commands.NewEnterModeCommand(sessionID, mode, code)
	require.NoError(t, err)
	return w.enterMode.Handle(t.Context(), cmd)
}

func TestEnterMode_Manager(t *testing.T) {
	w := newWorkshop(t, activeSubscription(t), nil)
	sessionID := kernel.NewUUID()

	s, err := w.enter(t, sessionID, access.ModeManager, "1234")
	require.NoError(t, err)
	assert.Equal(t, access.ModeManager, s.Mode())
	assert.Equal(t, access.ScreenDashboard, s.Screen())

	stored, err := w.sessions.Get(t.Context(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, access.ModeManager, stored.Mode())
}

func TestEnterMode_ManagerWithExpiredSubscription(t *testing.T) {
	expired := scenarioNow.Add(-time.Hour)
	sub, err := atelier.NewSubscription(atelier.SubscriptionActive, &expired)
	require.NoError(t, err)
	w := newWorkshop(t, sub, nil)

	s, err := w.enter(t, kernel.NewUUID(), access.ModeManager, "1234")
	require.NoError(t, err)
	assert.Equal(t, access.ScreenClients, s.Screen())
}

func TestEnterMode_WrongCodeLeavesSessionUnchanged(t *testing.T) {
	w := newWorkshop(t, activeSubscription(t), nil)
	sessionID := kernel.NewUUID()

	navigate, err := commands.NewNavigateCommand(sessionID, string(access.ScreenCatalogue))
	require.NoError(t, err)
	_, err = w.navigate.Handle(t.Context(), navigate)
	require.NoError(t, err)

	_, err = w.enter(t, sessionID, access.ModeManager, "0000")
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = w.enter(t, sessionID, access.ModeWorkstation, "POSTE-ZZZZ")
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	stored, err := w.sessions.Get(t.Context(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, access.ModeClient, stored.Mode())
	assert.Equal(t, access.ScreenCatalogue, stored.Screen())
}

func TestEnterMode_WorkstationCodeIsCaseInsensitive(t *testing.T) {
	w := newWorkshop(t, activeSubscription(t), nil)
	wsID, code := w.addWorkstation(t, "Atelier A")

	s, err := w.enter(t, kernel.NewUUID(), access.ModeWorkstation, " "+strings.ToLower(code.String())+" ")
	require.NoError(t, err)
	assert.Equal(t, access.ModeWorkstation, s.Mode())
	bound, ok := s.Actor().WorkstationID()
	require.True(t, ok)
	assert.True(t, bound.IsEqual(wsID))
	assert.Equal(t, access.ScreenHome, s.Screen())
}

func TestExitMode_AlwaysReturnsToClient(t *testing.T) {
	w := newWorkshop(t, activeSubscription(t), nil)
	sessionID := kernel.NewUUID()
	_, err := w.enter(t, sessionID, access.ModeManager, "1234")
	require.NoError(t, err)

	cmd, err := commands.NewExitModeCommand(sessionID)
	require.NoError(t, err)
	s, err := w.exitMode.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, access.ModeClient, s.Mode())
	assert.Equal(t, access.ScreenHome, s.Screen())

	s, err = w.exitMode.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, access.ModeClient, s.Mode())
}

func TestNavigate_RedirectsDisallowedScreens(t *testing.T) {
	w := newWorkshop(t, atelier.Subscription{}, nil)
	sessionID := kernel.NewUUID()
	_, err := w.enter(t, sessionID, access.ModeManager, "1234")
	require.NoError(t, err)

	tests := []struct {
		screen access.Screen
		want   access.Screen
	}{
		{access.ScreenKanban, access.ScreenKanban},
		{access.ScreenFinances, access.ScreenClients},
		{access.ScreenArchives, access.ScreenClients},
		{access.ScreenCatalogue, access.ScreenClients},
	}

	for _, tt := range tests {
		t.Run(string(tt.screen), func(t *testing.T) {
			cmd, err := commands.NewNavigateCommand(sessionID, string(tt.screen))
			require.NoError(t, err)
			s, err := w.navigate.Handle(t.Context(), cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Screen())
		})
	}
}

func TestNewEnterModeCommand_Validation(t *testing.T) {
	_, err := commands.NewEnterModeCommand(kernel.NewUUID(), access.ModeClient, "1234")
	require.ErrorIs(t, err, commands.ErrModeCannotBeEntered)

	_, err = commands.NewEnterModeCommand(kernel.NewUUID(), access.ModeManager, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewNavigateCommand(kernel.NewUUID(), "nowhere")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
