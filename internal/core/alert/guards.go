package alert

import "fmt"

// GateContext provides context for the action gates on the SOS screen.
// Populated by the caller from the current alert and decoy state.
type GateContext struct {
	Phase        Phase
	DecoyRinging bool
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanPressAlert evaluates whether the SOS button accepts a press.
// Rule: The button is covered while a decoy call is ringing.
func CanPressAlert(ctx GateContext) GuardResult {
	if ctx.DecoyRinging {
		return GuardResult{
			Allowed: false,
			Reason:  "SOS button is unavailable while a decoy call is ringing",
		}
	}
	return GuardResult{Allowed: true}
}

// CanShareLocation evaluates whether location sharing may start.
// Rule: Only while the alert is idle.
func CanShareLocation(ctx GateContext) GuardResult {
	if ctx.Phase != PhaseIdle {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot share location while alert is %s", ctx.Phase),
		}
	}
	return GuardResult{Allowed: true}
}

// CanStartDecoyCall evaluates whether a decoy call may be started.
// Rule: Not while counting down or active, and not while one is already ringing.
func CanStartDecoyCall(ctx GateContext) GuardResult {
	if ctx.Phase == PhaseCountingDown || ctx.Phase == PhaseActive {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Cannot start a decoy call while alert is %s", ctx.Phase),
		}
	}
	if ctx.DecoyRinging {
		return GuardResult{
			Allowed: false,
			Reason:  "A decoy call is already ringing",
		}
	}
	return GuardResult{Allowed: true}
}
