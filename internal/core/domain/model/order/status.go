package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status is the position of an order in the production pipeline.
//
//	PendingValidation ──> Sewing ──> Finishing ──> ReadyForDelivery ──> Delivered
//
// The arrows show pipeline order. Which moves are accepted is decided by a
// TransitionPolicy, not by Status itself.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota
	// PendingValidation is the initial status of every new order.
	PendingValidation
	// Sewing means the garment is in production at a workstation.
	Sewing
	// Finishing covers hemming, pressing and final touches.
	Finishing
	// ReadyForDelivery means the client can collect the order.
	ReadyForDelivery
	// Delivered removes the order from the active board; it only shows up in archives.
	Delivered
)

type statusInfo struct {
	name  string
	code  string
	label string
}

func getStatusInfo() map[Status]statusInfo {
	//nolint:exhaustive // Unknown has no wire code
	return map[Status]statusInfo{
		PendingValidation: {name: "PendingValidation", code: "pending_validation", label: "En attente de validation"},
		Sewing:            {name: "Sewing", code: "sewing", label: "En couture"},
		Finishing:         {name: "Finishing", code: "finishing", label: "En finition"},
		ReadyForDelivery:  {name: "ReadyForDelivery", code: "ready_for_delivery", label: "Prête pour livraison"},
		Delivered:         {name: "Delivered", code: "delivered", label: "Livré"},
	}
}

// Statuses returns the valid statuses in pipeline order.
func Statuses() []Status {
	return []Status{PendingValidation, Sewing, Finishing, ReadyForDelivery, Delivered}
}

// ParseStatus converts a wire code such as "ready_for_delivery" into a Status.
func ParseStatus(code string) (Status, error) {
	for s, info := range getStatusInfo() {
		if info.code == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.name
	}
	return "Unknown"
}

// Code is the persisted representation.
func (s Status) Code() string {
	return getStatusInfo()[s].code
}

// Label is the French display name used in notifications.
func (s Status) Label() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.label
	}
	return "Inconnu"
}

// IsTerminal reports whether the order left the active board.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// NotifiesClient reports whether entering s produces a client-facing notification.
func (s Status) NotifiesClient() bool {
	return s == ReadyForDelivery || s == Delivered
}

// Next returns the following pipeline status, or false for Delivered and invalid values.
func (s Status) Next() (Status, bool) {
	if s.Validate() != nil || s == Delivered {
		return Unknown, false
	}
	return s + 1, true
}

// Previous returns the preceding pipeline status, or false for PendingValidation and invalid values.
func (s Status) Previous() (Status, bool) {
	if s.Validate() != nil || s == PendingValidation {
		return Unknown, false
	}
	return s - 1, true
}
