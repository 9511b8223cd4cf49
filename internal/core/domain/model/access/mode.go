package access

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Mode is the access mode of a session.
type Mode string

const (
	ModeClient      Mode = "client"
	ModeManager     Mode = "manager"
	ModeWorkstation Mode = "workstation"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeClient, ModeManager, ModeWorkstation:
		return m, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is unknown", s))
}

func (m Mode) String() string {
	return string(m)
}
