package services

import (
	"atelier/internal/core/domain/model/order"
)

// Pipeline applies status transitions independently of routing.
type Pipeline struct {
	policy order.TransitionPolicy
}

// NewPipeline creates a pipeline. A nil policy accepts every transition.
func NewPipeline(policy order.TransitionPolicy) Pipeline {
	if policy == nil {
		policy = order.PermissiveTransitions{}
	}
	return Pipeline{policy: policy}
}

// SetStatus moves the order to the target status. Setting the current status again is accepted.
func (p Pipeline) SetStatus(o *order.Order, to order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.ChangeStatus(to, p.policy)
}

func (p Pipeline) Policy() order.TransitionPolicy {
	return p.policy
}
