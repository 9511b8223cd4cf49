package atelier

import (
	"strings"
)

// Profile is the identity of the workshop.
type Profile struct {
	name         string
	managerCode  string
	subscription Subscription
}

// NewProfile builds a profile. The manager code is stored verbatim; an
// empty code disables manager mode.
func NewProfile(name, managerCode string, subscription Subscription) Profile {
	return Profile{
		name:         strings.TrimSpace(name),
		managerCode:  managerCode,
		subscription: subscription,
	}
}

func (p Profile) Name() string {
	return p.name
}

func (p Profile) ManagerCode() string {
	return p.managerCode
}

func (p Profile) Subscription() Subscription {
	return p.subscription
}

// AuthenticateManager compares the typed code with the stored manager code.
func (p Profile) AuthenticateManager(input string) bool {
	return p.managerCode != "" && p.managerCode == input
}
