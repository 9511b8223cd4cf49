package order

import (
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
)

const (
	// PermissivePolicyName selects PermissiveTransitions.
	PermissivePolicyName = "permissive"
	// SequentialPolicyName selects SequentialTransitions.
	SequentialPolicyName = "sequential"
)

// TransitionPolicy decides whether an order may move from one status to another.
type TransitionPolicy interface {
	ValidateTransition(from, to Status) error
}

// PermissiveTransitions accepts any valid target status, including the
// current one and backward moves, so a manager can correct a misplaced card.
type PermissiveTransitions struct{}

func (PermissiveTransitions) ValidateTransition(_, to Status) error {
	return to.Validate()
}

// SequentialTransitions only accepts the next pipeline step, or one step
// back. Re-setting the current status is accepted as well.
type SequentialTransitions struct{}

func (SequentialTransitions) ValidateTransition(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	if next, ok := from.Next(); ok && next == to {
		return nil
	}
	if prev, ok := from.Previous(); ok && prev == to {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status transition",
		fmt.Errorf("%s cannot move to %s", from, to),
	)
}

// ParseTransitionPolicy resolves a policy by name. An empty name yields the permissive policy.
func ParseTransitionPolicy(name string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PermissivePolicyName:
		return PermissiveTransitions{}, nil
	case SequentialPolicyName:
		return SequentialTransitions{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("transition policy", fmt.Errorf("unknown policy %q", name))
	}
}
