package workstation

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a workstation is created or renamed with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWorkstationIsNotConstructed is returned when using an improperly initialized Workstation.
	ErrWorkstationIsNotConstructed = errors.New("Workstation must be created via NewWorkstation constructor")
)

// Workstation is a claimable production post.
//
// Business rules:
//   - id and accessCode never change after creation
//   - name is never blank
//   - accessCode uniqueness within an atelier is enforced by the aggregate root
//
// Example:
//
//	code, _ := kernel.NewAccessCode()
//	ws, err := workstation.NewWorkstation(kernel.NewUUID(), "Atelier A", code)
type Workstation struct {
	// id uniquely identifies the workstation; orders reference it in their routing
	id kernel.UUID
	// name is shown in notifications and on the workstation screen
	name string
	// accessCode is the POSTE-XXXX code typed on the device to enter workstation mode
	accessCode kernel.AccessCode
	// guard ensures the workstation was properly constructed
	guard guard.ConstructorGuard
}

// NewWorkstation creates a workstation. All validation errors are joined.
func NewWorkstation(id kernel.UUID, name string, accessCode kernel.AccessCode) (*Workstation, error) {
	ws := &Workstation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ws.setID(id),
		ws.setName(name),
		ws.setAccessCode(accessCode),
	); err != nil {
		return nil, err
	}

	return ws, nil
}

// RestoreWorkstation rebuilds a workstation from a persisted snapshot.
// The rules are the same as NewWorkstation since a workstation carries no derived state.
func RestoreWorkstation(id kernel.UUID, name string, accessCode kernel.AccessCode) (*Workstation, error) {
	return NewWorkstation(id, name, accessCode)
}

// Validate rejects workstations that bypassed the constructors.
func (w *Workstation) Validate() error {
	if w == nil {
		return ErrWorkstationIsNotConstructed
	}
	return w.guard.Validate(ErrWorkstationIsNotConstructed)
}

func (w *Workstation) ID() kernel.UUID {
	return w.id
}

func (w *Workstation) Name() string {
	return w.name
}

func (w *Workstation) AccessCode() kernel.AccessCode {
	return w.accessCode
}

// IsEqual compares workstations by identifier.
func (w *Workstation) IsEqual(other *Workstation) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// Authenticate reports whether the typed code opens this workstation.
// Input is trimmed and upper-cased before the comparison.
func (w *Workstation) Authenticate(input string) bool {
	return w.accessCode.Matches(input)
}

// Rename changes the display name.
func (w *Workstation) Rename(name string) error {
	return w.setName(name)
}

// Clone returns an independent copy.
func (w *Workstation) Clone() *Workstation {
	c := *w
	return &c
}

func (w *Workstation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Workstation) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Workstation) setAccessCode(code kernel.AccessCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	w.accessCode = code
	return nil
}
