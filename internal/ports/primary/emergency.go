package primary

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnmounted is returned by every call made after the screen was closed.
var ErrUnmounted = errors.New("emergency screen is unmounted")

// ErrActionGated is wrapped by actions rejected in the current alert phase.
var ErrActionGated = errors.New("action unavailable")

// EmergencyService defines the primary port for the SOS screen.
// A service instance is mounted once per screen and unmounted with Close.
type EmergencyService interface {
	// PressAlertButton starts, cancels or deactivates the alert depending on its phase.
	PressAlertButton(ctx context.Context) error

	// CurrentPhase returns Idle, CountingDown(n) or Active.
	CurrentPhase(ctx context.Context) (Phase, error)

	// View returns everything the screen needs to render.
	View(ctx context.Context) (AlertView, error)

	// ShareLocation shares the current position. Rejected unless the alert is idle.
	ShareLocation(ctx context.Context) error

	// StartDecoyCall schedules an incoming decoy call.
	StartDecoyCall(ctx context.Context) error

	// AcceptDecoyCall answers the ringing decoy call.
	AcceptDecoyCall(ctx context.Context) error

	// DeclineDecoyCall dismisses the ringing decoy call.
	DeclineDecoyCall(ctx context.Context) error

	// Close unmounts the screen, cancelling every pending timer.
	Close() error
}

// PhaseKind is the discrete state of the alert.
type PhaseKind string

// Phase kind constants
const (
	PhaseIdle         PhaseKind = "idle"
	PhaseCountingDown PhaseKind = "counting_down"
	PhaseActive       PhaseKind = "active"
)

// Phase represents the alert phase at the port boundary.
type Phase struct {
	Kind             PhaseKind
	SecondsRemaining int // Only for PhaseCountingDown
}

func (p Phase) String() string {
	switch p.Kind {
	case PhaseCountingDown:
		return fmt.Sprintf("CountingDown(%d)", p.SecondsRemaining)
	case PhaseActive:
		return "Active"
	default:
		return "Idle"
	}
}

// DecoyView describes the decoy call overlay.
type DecoyView struct {
	Pending   bool
	Ringing   bool
	StartedAt time.Time // Zero unless ringing
	TimeLabel string    // HH:MM, empty unless ringing
}

// AlertView is a snapshot of the SOS screen.
type AlertView struct {
	Phase        Phase
	Decoy        DecoyView
	PressEnabled bool
	ShareEnabled bool
	DecoyEnabled bool
}
