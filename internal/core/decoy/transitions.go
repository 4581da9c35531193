// Package decoy contains the pure business logic for the decoy ("fake") call.
// This is part of the Functional Core - no I/O, only pure functions.
package decoy

import (
	"time"

	"github.com/example/circle/internal/core/effects"
)

// Phase represents the possible states of a decoy call.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePending Phase = "pending"
	PhaseRinging Phase = "ringing"
)

// Delay separates starting a decoy call from the phone ringing.
const Delay = 2 * time.Second

// TimeLabelLayout renders the captured ring time as HH:MM.
const TimeLabelLayout = "15:04"

// State is the decoy call state. StartedAt is set only while ringing.
type State struct {
	Phase      Phase
	StartedAt  time.Time
	Generation uint64
}

// Ringing reports whether the incoming-call screen is showing.
func (s State) Ringing() bool {
	return s.Phase == PhaseRinging
}

// TimeLabel returns the clock label shown on the call screen, or "" when not ringing.
func (s State) TimeLabel() string {
	if !s.Ringing() {
		return ""
	}
	return s.StartedAt.Format(TimeLabelLayout)
}

// Start begins a decoy call. A pending call is restarted: the old timer is
// replaced by a new one under a fresh generation. Callers gate ringing calls.
func Start(s State) (State, []effects.Effect) {
	if s.Ringing() {
		return s, nil
	}
	next := State{Phase: PhasePending, Generation: s.Generation + 1}
	return next, []effects.Effect{
		effects.NotifyEffect{Kind: effects.NotifyDecoyStarting},
		effects.ScheduleEffect{Timer: effects.TimerDecoyCall, Delay: Delay, Generation: next.Generation},
	}
}

// Fire handles the decoy timer. Only the timer of the current pending call rings.
func Fire(s State, generation uint64, now time.Time) State {
	if s.Phase != PhasePending || generation != s.Generation {
		return s
	}
	return State{Phase: PhaseRinging, StartedAt: now, Generation: s.Generation + 1}
}

// Accept answers the ringing call, which ends it immediately.
func Accept(s State) (State, []effects.Effect) {
	if !s.Ringing() {
		return s, nil
	}
	return State{Phase: PhaseIdle, Generation: s.Generation}, []effects.Effect{
		effects.NotifyEffect{Kind: effects.NotifyDecoyEnded},
	}
}

// Decline dismisses the ringing call silently.
func Decline(s State) State {
	if !s.Ringing() {
		return s
	}
	return State{Phase: PhaseIdle, Generation: s.Generation}
}

// Unmount drops any pending decoy timer.
func Unmount(s State) (State, []effects.Effect) {
	next := s
	next.Generation++
	return next, []effects.Effect{effects.CancelEffect{Timer: effects.TimerDecoyCall}}
}
