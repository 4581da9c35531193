// Package alert contains the pure business logic for the emergency alert.
// This is part of the Functional Core - no I/O, only pure functions.
package alert

import (
	"fmt"
	"time"

	"github.com/example/circle/internal/core/effects"
)

// Phase represents the discrete states of the emergency alert.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseCountingDown Phase = "counting_down"
	PhaseActive       Phase = "active"
)

const (
	// CountdownSeconds is the value a countdown starts from.
	CountdownSeconds = 5

	// TickInterval separates two countdown values.
	TickInterval = time.Second

	// ActivationDelay separates the countdown showing 0 from activation.
	ActivationDelay = 0 * time.Second

	// AlertSoundResource is played on activation.
	AlertSoundResource = "sounds/sos-alert.mp3"

	// CancelReasonCountdown is passed to the notifier when a countdown is cancelled.
	CancelReasonCountdown = "countdown"
)

// State is the alert state. SecondsRemaining is meaningful only while
// Phase is PhaseCountingDown and is zero otherwise.
type State struct {
	Phase            Phase
	SecondsRemaining int
	Generation       uint64
}

// InitialState returns the state of a freshly mounted alert.
func InitialState() State {
	return State{Phase: PhaseIdle}
}

// String renders the state as Idle, CountingDown(n) or Active.
func (s State) String() string {
	switch s.Phase {
	case PhaseCountingDown:
		return fmt.Sprintf("CountingDown(%d)", s.SecondsRemaining)
	case PhaseActive:
		return "Active"
	default:
		return "Idle"
	}
}

// EventKind identifies what happened.
type EventKind string

const (
	EventPress   EventKind = "press"
	EventTick    EventKind = "tick"
	EventUnmount EventKind = "unmount"
)

// Event is an input to Transition. Generation is only read for ticks and
// must match the generation stamped on the timer that produced it.
type Event struct {
	Kind       EventKind
	Generation uint64
}

// Press returns a button press event.
func Press() Event { return Event{Kind: EventPress} }

// Tick returns a timer event for the given generation.
func Tick(generation uint64) Event { return Event{Kind: EventTick, Generation: generation} }

// Unmount returns the teardown event.
func Unmount() Event { return Event{Kind: EventUnmount} }

// Transition applies an event to the state and returns the next state and
// the effects the shell must execute. It never mutates its input.
func Transition(s State, ev Event) (State, []effects.Effect) {
	switch ev.Kind {
	case EventPress:
		return press(s)
	case EventTick:
		return tick(s, ev.Generation)
	case EventUnmount:
		next := s
		next.Generation++
		return next, []effects.Effect{effects.CancelEffect{Timer: effects.TimerAlertTick}}
	default:
		return s, nil
	}
}

func press(s State) (State, []effects.Effect) {
	switch s.Phase {
	case PhaseIdle:
		next := State{
			Phase:            PhaseCountingDown,
			SecondsRemaining: CountdownSeconds,
			Generation:       s.Generation + 1,
		}
		return next, []effects.Effect{
			effects.ScheduleEffect{Timer: effects.TimerAlertTick, Delay: TickInterval, Generation: next.Generation},
			logf("info", "countdown started", next),
		}

	case PhaseCountingDown:
		// Any press while counting cancels, including at zero.
		next := State{Phase: PhaseIdle, Generation: s.Generation + 1}
		return next, []effects.Effect{
			effects.CancelEffect{Timer: effects.TimerAlertTick},
			effects.NotifyEffect{Kind: effects.NotifyCancelled, Reason: CancelReasonCountdown},
			logf("info", "countdown cancelled", s),
		}

	case PhaseActive:
		next := State{Phase: PhaseIdle, Generation: s.Generation + 1}
		return next, []effects.Effect{
			effects.NotifyEffect{Kind: effects.NotifyDeactivated},
			logf("info", "alert deactivated", s),
		}
	}
	return s, nil
}

func tick(s State, generation uint64) (State, []effects.Effect) {
	if s.Phase != PhaseCountingDown || generation != s.Generation {
		return s, nil
	}

	if s.SecondsRemaining == 0 {
		next := State{Phase: PhaseActive, Generation: s.Generation + 1}
		return next, []effects.Effect{
			effects.NotifyEffect{Kind: effects.NotifyAlertActivated},
			effects.SoundEffect{Resource: AlertSoundResource},
			logf("info", "alert activated", next),
		}
	}

	next := State{
		Phase:            PhaseCountingDown,
		SecondsRemaining: s.SecondsRemaining - 1,
		Generation:       s.Generation + 1,
	}
	delay := TickInterval
	if next.SecondsRemaining == 0 {
		delay = ActivationDelay
	}
	return next, []effects.Effect{
		effects.ScheduleEffect{Timer: effects.TimerAlertTick, Delay: delay, Generation: next.Generation},
	}
}

func logf(level, message string, s State) effects.LogEffect {
	return effects.LogEffect{
		Level:   level,
		Message: message,
		Fields:  map[string]any{"state": s.String()},
	}
}
