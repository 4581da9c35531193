// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

import "time"

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// TimerName identifies the purpose of a scheduled timer.
// At most one timer per name is pending at any instant.
type TimerName string

const (
	TimerAlertTick TimerName = "alert_tick"
	TimerDecoyCall TimerName = "decoy_call"
)

// NotifyKind names a user-visible notification.
type NotifyKind string

const (
	NotifyCancelled      NotifyKind = "cancelled"
	NotifyAlertActivated NotifyKind = "alert_activated"
	NotifyDeactivated    NotifyKind = "deactivated"
	NotifyDecoyStarting  NotifyKind = "decoy_starting"
	NotifyDecoyEnded     NotifyKind = "decoy_ended"
)

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// NotifyEffect represents a call into the notifier.
type NotifyEffect struct {
	Kind   NotifyKind
	Reason string // Only for NotifyCancelled
}

func (e NotifyEffect) EffectType() string { return "notify" }

// ScheduleEffect asks the shell to arm a timer. Any pending timer with the
// same name is replaced. When it fires, the shell re-enters the core with
// the same Timer and Generation.
type ScheduleEffect struct {
	Timer      TimerName
	Delay      time.Duration
	Generation uint64
}

func (e ScheduleEffect) EffectType() string { return "schedule" }

// CancelEffect asks the shell to stop a pending timer, if any.
type CancelEffect struct {
	Timer TimerName
}

func (e CancelEffect) EffectType() string { return "cancel" }

// SoundEffect represents playing an audio resource. Failures are tolerated.
type SoundEffect struct {
	Resource string
}

func (e SoundEffect) EffectType() string { return "sound" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
