// Package contact contains the pure business logic for emergency contacts
// and the alerts queued for them.
// Guards are pure functions that evaluate preconditions without side effects.
package contact

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// Outbox statuses.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// MinPhoneDigits rejects obviously truncated numbers.
const MinPhoneDigits = 3

// AddContactContext provides context for contact creation guards.
type AddContactContext struct {
	Name       string
	Phone      string
	PhoneTaken bool
}

// StatusTransitionContext provides context for outbox status guards.
type StatusTransitionContext struct {
	AlertID       string
	CurrentStatus string
	NewStatus     string
}

// CanAddContact evaluates whether a contact can be added.
// Rules:
// - Name must not be empty
// - Phone must be a plausible number
// - Phone must not already belong to a contact
func CanAddContact(ctx AddContactContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "contact name cannot be empty"}
	}

	if _, err := NormalizePhone(ctx.Phone); err != nil {
		return GuardResult{Allowed: false, Reason: err.Error()}
	}

	if ctx.PhoneTaken {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("phone %s already belongs to a contact", ctx.Phone),
		}
	}

	return GuardResult{Allowed: true}
}

// CanMarkAlert evaluates whether an outbox entry may move to a new status.
// Rules:
// - New status must be sent or failed
// - Sent entries are final
// - Pending and failed entries may be marked sent or failed
func CanMarkAlert(ctx StatusTransitionContext) GuardResult {
	if ctx.NewStatus != StatusSent && ctx.NewStatus != StatusFailed {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid status %q: must be %s or %s", ctx.NewStatus, StatusSent, StatusFailed),
		}
	}

	if ctx.CurrentStatus == StatusSent {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("contact alert %s was already sent", ctx.AlertID),
		}
	}

	return GuardResult{Allowed: true}
}

// NormalizePhone strips spaces, dashes, dots and parentheses. A leading +
// is kept; every other character must be a digit.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	digits := 0
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", fmt.Errorf("invalid phone %q: unexpected character %q", phone, r)
		}
	}
	if digits < MinPhoneDigits {
		return "", fmt.Errorf("invalid phone %q: too few digits", phone)
	}
	return b.String(), nil
}

// AlertMessage is the text queued for each contact when an alert goes active.
func AlertMessage(contactName string) string {
	return fmt.Sprintf("%s, I need help! My emergency alert was just activated.", contactName)
}
