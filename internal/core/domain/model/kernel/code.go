package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"atelier/internal/pkg/errs"
)

const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	ticketIDPrefix   = "CMD-"
	ticketIDLength   = 6
	accessCodePrefix = "POSTE-"
	accessCodeLength = 4
)

var (
	// ErrTicketIDIsNotConstructed indicates a zero-value TicketID.
	ErrTicketIDIsNotConstructed = errs.NewValueIsRequiredError("ticket ID must be created via NewTicketID or ParseTicketID")
	// ErrAccessCodeIsNotConstructed indicates a zero-value AccessCode.
	ErrAccessCodeIsNotConstructed = errs.NewValueIsRequiredError("access code must be created via NewAccessCode or ParseAccessCode")
)

// TicketID is the human-facing order code, "CMD-" followed by six
// characters from [0-9A-Z]. It is assigned once when an order is created.
type TicketID struct {
	value string
}

// NewTicketID draws a fresh random ticket identifier.
func NewTicketID() (TicketID, error) {
	suffix, err := randomCode(ticketIDLength)
	if err != nil {
		return TicketID{}, err
	}
	return TicketID{value: ticketIDPrefix + suffix}, nil
}

// ParseTicketID validates a persisted ticket identifier.
func ParseTicketID(s string) (TicketID, error) {
	if err := validateCode("ticket ID", s, ticketIDPrefix, ticketIDLength); err != nil {
		return TicketID{}, err
	}
	return TicketID{value: s}, nil
}

func (t TicketID) String() string {
	return t.value
}

// IsEqual reports whether both ticket identifiers are the same.
func (t TicketID) IsEqual(other TicketID) bool {
	return t.value == other.value
}

// Validate returns ErrTicketIDIsNotConstructed for the zero value.
func (t TicketID) Validate() error {
	if t.value == "" {
		return ErrTicketIDIsNotConstructed
	}
	return nil
}

// AccessCode is the workstation login code, "POSTE-" followed by four
// characters from [0-9A-Z].
type AccessCode struct {
	value string
}

// NewAccessCode draws a fresh random workstation access code.
func NewAccessCode() (AccessCode, error) {
	suffix, err := randomCode(accessCodeLength)
	if err != nil {
		return AccessCode{}, err
	}
	return AccessCode{value: accessCodePrefix + suffix}, nil
}

// ParseAccessCode validates a persisted access code.
func ParseAccessCode(s string) (AccessCode, error) {
	if err := validateCode("access code", s, accessCodePrefix, accessCodeLength); err != nil {
		return AccessCode{}, err
	}
	return AccessCode{value: s}, nil
}

// Matches compares the code against user input. Input is trimmed and
// upper-cased, then compared case-sensitively.
func (c AccessCode) Matches(input string) bool {
	return c.value != "" && c.value == strings.ToUpper(strings.TrimSpace(input))
}

func (c AccessCode) String() string {
	return c.value
}

// IsEqual reports whether both access codes are the same.
func (c AccessCode) IsEqual(other AccessCode) bool {
	return c.value == other.value
}

// Validate returns ErrAccessCodeIsNotConstructed for the zero value.
func (c AccessCode) Validate() error {
	if c.value == "" {
		return ErrAccessCodeIsNotConstructed
	}
	return nil
}

func randomCode(length int) (string, error) {
	alphabetSize := big.NewInt(int64(len(codeAlphabet)))
	var b strings.Builder
	b.Grow(length)
	for range length {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate random code: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func validateCode(param, s, prefix string, length int) error {
	suffix, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q does not start with %s", s, prefix))
	}
	if len(suffix) != length {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q must have %d characters after %s", s, length, prefix))
	}
	for _, r := range suffix {
		if !strings.ContainsRune(codeAlphabet, r) {
			return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q contains invalid character %q", s, r))
		}
	}
	return nil
}
