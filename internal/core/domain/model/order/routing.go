package order

import (
	"atelier/internal/core/domain/model/kernel"
)

// WaitingRoomID is the reserved workstation identifier meaning "in the shared pool".
// It can never collide with a workstation id since those are UUIDs.
const WaitingRoomID = "WAITING_ROOM"

// RoutingKind enumerates the three places an order can sit.
type RoutingKind int

const (
	Unassigned RoutingKind = iota
	WaitingRoom
	AtWorkstation
)

// Routing is the dispatch target of an order: nowhere, the waiting room, or a workstation.
type Routing struct {
	kind          RoutingKind
	workstationID kernel.UUID
}

// Unrouted is the routing of an order nobody dispatched yet.
func Unrouted() Routing {
	return Routing{kind: Unassigned}
}

// InWaitingRoom routes an order into the shared pool.
func InWaitingRoom() Routing {
	return Routing{kind: WaitingRoom}
}

// ToWorkstation routes an order to a specific workstation.
func ToWorkstation(id kernel.UUID) (Routing, error) {
	if err := id.Validate(); err != nil {
		return Routing{}, err
	}
	return Routing{kind: AtWorkstation, workstationID: id}, nil
}

// ParseRouting reads the persisted workstationId field: empty means unassigned,
// WaitingRoomID means the pool, anything else must be a workstation UUID.
func ParseRouting(workstationID string) (Routing, error) {
	switch workstationID {
	case "":
		return Unrouted(), nil
	case WaitingRoomID:
		return InWaitingRoom(), nil
	}
	id, err := kernel.UUIDFromString(workstationID)
	if err != nil {
		return Routing{}, err
	}
	return ToWorkstation(id)
}

func (r Routing) Kind() RoutingKind {
	return r.kind
}

func (r Routing) IsUnassigned() bool {
	return r.kind == Unassigned
}

func (r Routing) IsWaitingRoom() bool {
	return r.kind == WaitingRoom
}

// Workstation returns the target workstation and true when routed to one.
func (r Routing) Workstation() (kernel.UUID, bool) {
	if r.kind != AtWorkstation {
		return kernel.UUID{}, false
	}
	return r.workstationID, true
}

// IsHeldBy reports whether the order is routed to the given workstation.
func (r Routing) IsHeldBy(id kernel.UUID) bool {
	return r.kind == AtWorkstation && r.workstationID.IsEqual(id)
}

// String is the persisted workstationId value.
func (r Routing) String() string {
	switch r.kind {
	case WaitingRoom:
		return WaitingRoomID
	case AtWorkstation:
		return r.workstationID.String()
	default:
		return ""
	}
}
