package access

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
)

// Action is an operation on the order pipeline subject to the gate.
type Action string

const (
	ActionCreateOrder        Action = "create order"
	ActionSetStatus          Action = "set status"
	ActionSetPrice           Action = "set price"
	ActionAssign             Action = "assign order"
	ActionClaim              Action = "claim order"
	ActionTransfer           Action = "transfer order"
	ActionManageWorkstations Action = "manage workstations"
	ActionReadNotifications  Action = "read notifications"
	ActionViewBoard          Action = "view board"
	ActionViewArchives       Action = "view archives"
)

var (
	managerActions = map[Action]bool{
		ActionCreateOrder:        true,
		ActionSetStatus:          true,
		ActionSetPrice:           true,
		ActionAssign:             true,
		ActionManageWorkstations: true,
		ActionReadNotifications:  true,
		ActionViewBoard:          true,
		ActionViewArchives:       true,
	}

	workstationActions = map[Action]bool{
		ActionClaim:     true,
		ActionTransfer:  true,
		ActionSetStatus: true,
		ActionViewBoard: true,
	}

	// ownedActions are only allowed to a workstation on orders routed to it.
	ownedActions = map[Action]bool{
		ActionTransfer:  true,
		ActionSetStatus: true,
	}
)

// Actor is who performs a command: the mode plus, in workstation mode, the bound workstation.
// The zero value is a client.
type Actor struct {
	mode          Mode
	workstationID kernel.UUID
}

func Client() Actor {
	return Actor{mode: ModeClient}
}

func Manager() Actor {
	return Actor{mode: ModeManager}
}

// AtWorkstation builds a workstation-mode actor bound to id.
func AtWorkstation(id kernel.UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{mode: ModeWorkstation, workstationID: id}, nil
}

func (a Actor) Mode() Mode {
	if a.mode == "" {
		return ModeClient
	}
	return a.mode
}

// WorkstationID returns the bound workstation in workstation mode.
func (a Actor) WorkstationID() (kernel.UUID, bool) {
	if a.mode != ModeWorkstation {
		return kernel.UUID{}, false
	}
	return a.workstationID, true
}

// Authorize checks the action against the mode's permissions.
func (a Actor) Authorize(action Action) error {
	switch a.Mode() {
	case ModeManager:
		if managerActions[action] {
			return nil
		}
	case ModeWorkstation:
		if workstationActions[action] {
			return nil
		}
	}
	return errs.NewUnauthorizedError(string(action), a.Mode().String())
}

// AuthorizeOnOrder checks the action for a specific order. A workstation
// may only transfer or change the status of orders routed to it.
func (a Actor) AuthorizeOnOrder(action Action, routing order.Routing) error {
	if err := a.Authorize(action); err != nil {
		return err
	}
	if a.Mode() == ModeWorkstation && ownedActions[action] && !routing.IsHeldBy(a.workstationID) {
		return errs.NewUnauthorizedErrorWithCause(
			string(action),
			a.Mode().String(),
			errs.NewValueIsInvalidError("order is not routed to this workstation"),
		)
	}
	return nil
}
