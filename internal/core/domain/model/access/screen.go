package access

import (
	"fmt"
	"slices"

	"atelier/internal/pkg/errs"
)

// Screen identifies a page of the product.
type Screen string

const (
	ScreenHome         Screen = "accueil"
	ScreenCatalogue    Screen = "catalogue"
	ScreenAppointments Screen = "rendez-vous"
	ScreenDashboard    Screen = "dashboard"
	ScreenClients      Screen = "clients"
	ScreenOrders       Screen = "commandes"
	ScreenKanban       Screen = "kanban"
	ScreenModels       Screen = "modeles"
	ScreenWorkstations Screen = "postes"
	ScreenFinances     Screen = "finances"
	ScreenArchives     Screen = "archives"
	ScreenSettings     Screen = "parametres"
	ScreenSubscription Screen = "abonnement"
	ScreenWorkstation  Screen = "poste"
)

var (
	clientScreens = []Screen{ScreenHome, ScreenCatalogue, ScreenAppointments}

	workstationScreens = []Screen{ScreenHome, ScreenWorkstation}

	managerScreens = []Screen{
		ScreenDashboard,
		ScreenClients,
		ScreenOrders,
		ScreenKanban,
		ScreenModels,
		ScreenWorkstations,
		ScreenFinances,
		ScreenArchives,
		ScreenSettings,
		ScreenSubscription,
	}

	// restrictedManagerScreens applies while the subscription is not active.
	restrictedManagerScreens = []Screen{
		ScreenClients,
		ScreenOrders,
		ScreenKanban,
		ScreenModels,
		ScreenWorkstations,
		ScreenSettings,
		ScreenSubscription,
	}
)

// ParseScreen validates a screen name.
func ParseScreen(s string) (Screen, error) {
	screen := Screen(s)
	if slices.Contains(clientScreens, screen) ||
		slices.Contains(workstationScreens, screen) ||
		slices.Contains(managerScreens, screen) {
		return screen, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("screen", fmt.Errorf("%q is unknown", s))
}

// AllowedScreens returns the allow-list of a mode. subscriptionActive only matters for manager mode.
func AllowedScreens(mode Mode, subscriptionActive bool) []Screen {
	switch mode {
	case ModeManager:
		if subscriptionActive {
			return slices.Clone(managerScreens)
		}
		return slices.Clone(restrictedManagerScreens)
	case ModeWorkstation:
		return slices.Clone(workstationScreens)
	default:
		return slices.Clone(clientScreens)
	}
}

// DefaultScreen is where a mode lands when the current screen is not allowed.
func DefaultScreen(mode Mode, subscriptionActive bool) Screen {
	if mode == ModeManager {
		if subscriptionActive {
			return ScreenDashboard
		}
		return ScreenClients
	}
	return ScreenHome
}

// IsAllowed reports whether the screen is in the mode's allow-list.
func IsAllowed(mode Mode, subscriptionActive bool, screen Screen) bool {
	return slices.Contains(AllowedScreens(mode, subscriptionActive), screen)
}

// Resolve applies the mode/page consistency rule: an allowed screen is
// kept, anything else is replaced by the mode's default.
func Resolve(mode Mode, subscriptionActive bool, screen Screen) Screen {
	if IsAllowed(mode, subscriptionActive, screen) {
		return screen
	}
	return DefaultScreen(mode, subscriptionActive)
}
