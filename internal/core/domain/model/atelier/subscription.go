package atelier

import (
	"fmt"
	"strings"
	"time"

	"atelier/internal/pkg/errs"
)

// SubscriptionStatus is the billing state of the workshop.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionPending  SubscriptionStatus = "pending"
)

// ParseSubscriptionStatus reads a persisted status. An empty value is read as inactive.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	switch status := SubscriptionStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case "":
		return SubscriptionInactive, nil
	case SubscriptionActive, SubscriptionTrial, SubscriptionInactive, SubscriptionPending:
		return status, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("subscription status", fmt.Errorf("%q is unknown", s))
	}
}

// Subscription gates the analytics and archive screens of manager mode.
// It never affects order dispatch.
type Subscription struct {
	status    SubscriptionStatus
	expiresAt *time.Time
}

// NewSubscription builds a subscription. expiresAt may be nil for open-ended plans.
func NewSubscription(status SubscriptionStatus, expiresAt *time.Time) (Subscription, error) {
	parsed, err := ParseSubscriptionStatus(string(status))
	if err != nil {
		return Subscription{}, err
	}
	s := Subscription{status: parsed}
	if expiresAt != nil {
		t := expiresAt.UTC()
		s.expiresAt = &t
	}
	return s, nil
}

func (s Subscription) Status() SubscriptionStatus {
	if s.status == "" {
		return SubscriptionInactive
	}
	return s.status
}

func (s Subscription) ExpiresAt() (time.Time, bool) {
	if s.expiresAt == nil {
		return time.Time{}, false
	}
	return *s.expiresAt, true
}

// IsActive reports whether the status is active or trial and the plan has not expired at now.
func (s Subscription) IsActive(now time.Time) bool {
	if s.status != SubscriptionActive && s.status != SubscriptionTrial {
		return false
	}
	return s.expiresAt == nil || s.expiresAt.After(now)
}
