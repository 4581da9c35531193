package alert

import (
	"testing"
)

func TestCanPressAlert(t *testing.T) {
	tests := []struct {
		name        string
		ctx         GateContext
		wantAllowed bool
	}{
		{"idle without decoy", GateContext{Phase: PhaseIdle}, true},
		{"counting down without decoy", GateContext{Phase: PhaseCountingDown}, true},
		{"active without decoy", GateContext{Phase: PhaseActive}, true},
		{"decoy ringing over idle", GateContext{Phase: PhaseIdle, DecoyRinging: true}, false},
		{"decoy ringing over countdown", GateContext{Phase: PhaseCountingDown, DecoyRinging: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanPressAlert(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanPressAlert() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestCanShareLocation(t *testing.T) {
	tests := []struct {
		name        string
		ctx         GateContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "idle can share",
			ctx:         GateContext{Phase: PhaseIdle},
			wantAllowed: true,
		},
		{
			name:        "idle with decoy ringing can share",
			ctx:         GateContext{Phase: PhaseIdle, DecoyRinging: true},
			wantAllowed: true,
		},
		{
			name:        "counting down cannot share",
			ctx:         GateContext{Phase: PhaseCountingDown},
			wantAllowed: false,
			wantReason:  "Cannot share location while alert is counting_down",
		},
		{
			name:        "active cannot share",
			ctx:         GateContext{Phase: PhaseActive},
			wantAllowed: false,
			wantReason:  "Cannot share location while alert is active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanShareLocation(tt.ctx)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanShareLocation() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if result.Reason != tt.wantReason {
				t.Errorf("CanShareLocation() Reason = %q, want %q", result.Reason, tt.wantReason)
			}

			err := result.Error()
			if tt.wantAllowed && err != nil {
				t.Errorf("CanShareLocation().Error() = %v, want nil", err)
			}
			if !tt.wantAllowed && err == nil {
				t.Error("CanShareLocation().Error() = nil, want error")
			}
		})
	}
}

func TestCanStartDecoyCall(t *testing.T) {
	tests := []struct {
		name        string
		ctx         GateContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "idle can start",
			ctx:         GateContext{Phase: PhaseIdle},
			wantAllowed: true,
		},
		{
			name:        "counting down cannot start",
			ctx:         GateContext{Phase: PhaseCountingDown},
			wantAllowed: false,
			wantReason:  "Cannot start a decoy call while alert is counting_down",
		},
		{
			name:        "active cannot start",
			ctx:         GateContext{Phase: PhaseActive},
			wantAllowed: false,
			wantReason:  "Cannot start a decoy call while alert is active",
		},
		{
			name:        "already ringing cannot start",
			ctx:         GateContext{Phase: PhaseIdle, DecoyRinging: true},
			wantAllowed: false,
			wantReason:  "A decoy call is already ringing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanStartDecoyCall(tt.ctx)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanStartDecoyCall() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if result.Reason != tt.wantReason {
				t.Errorf("CanStartDecoyCall() Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestGuardResult_Error(t *testing.T) {
	tests := []struct {
		name      string
		result    GuardResult
		wantError bool
	}{
		{
			name:      "allowed result returns nil error",
			result:    GuardResult{Allowed: true, Reason: ""},
			wantError: false,
		},
		{
			name:      "disallowed result returns error",
			result:    GuardResult{Allowed: false, Reason: "not allowed"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Error()
			if (err != nil) != tt.wantError {
				t.Errorf("GuardResult.Error() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}
