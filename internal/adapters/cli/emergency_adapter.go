package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/circle/internal/ports/primary"
)

// StepKind names one scripted action on the SOS screen.
type StepKind string

const (
	StepPress   StepKind = "press"
	StepWait    StepKind = "wait"
	StepShare   StepKind = "share"
	StepDecoy   StepKind = "decoy"
	StepAccept  StepKind = "accept"
	StepDecline StepKind = "decline"
	StepPhase   StepKind = "phase"
)

// Step is a parsed simulate argument. Wait is set only for StepWait.
type Step struct {
	Kind StepKind
	Wait time.Duration
}

// ParseSteps parses arguments like "press", "wait:2s" or "phase".
func ParseSteps(args []string) ([]Step, error) {
	steps := make([]Step, 0, len(args))
	for _, arg := range args {
		name, value, hasValue := strings.Cut(strings.ToLower(strings.TrimSpace(arg)), ":")
		kind := StepKind(name)
		switch kind {
		case StepWait:
			if !hasValue {
				return nil, fmt.Errorf("step %q: wait needs a duration, e.g. wait:5s", arg)
			}
			d, err := time.ParseDuration(value)
			if err != nil {
				return nil, fmt.Errorf("step %q: %w", arg, err)
			}
			if d < 0 {
				return nil, fmt.Errorf("step %q: duration must not be negative", arg)
			}
			steps = append(steps, Step{Kind: StepWait, Wait: d})
		case StepPress, StepShare, StepDecoy, StepAccept, StepDecline, StepPhase:
			if hasValue {
				return nil, fmt.Errorf("step %q: %s takes no value", arg, kind)
			}
			steps = append(steps, Step{Kind: kind})
		default:
			return nil, fmt.Errorf("unknown step %q", arg)
		}
	}
	return steps, nil
}

// EmergencyAdapter drives an EmergencyService from scripted steps.
type EmergencyAdapter struct {
	service primary.EmergencyService
	out     io.Writer
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewEmergencyAdapter creates a new EmergencyAdapter with the given service.
func NewEmergencyAdapter(service primary.EmergencyService, out io.Writer) *EmergencyAdapter {
	return &EmergencyAdapter{
		service: service,
		out:     out,
		sleep:   sleepContext,
	}
}

// Run executes steps in order. Gated actions are reported and skipped;
// any other error stops the run.
func (a *EmergencyAdapter) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		err := a.runStep(ctx, step)
		if errors.Is(err, errGated) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var errGated = errors.New("gated")

func (a *EmergencyAdapter) runStep(ctx context.Context, step Step) error {
	var err error
	switch step.Kind {
	case StepWait:
		fmt.Fprintf(a.out, "… waiting %s\n", step.Wait)
		return a.sleep(ctx, step.Wait)
	case StepPhase:
		return a.PrintView(ctx)
	case StepPress:
		err = a.service.PressAlertButton(ctx)
	case StepShare:
		err = a.service.ShareLocation(ctx)
	case StepDecoy:
		err = a.service.StartDecoyCall(ctx)
	case StepAccept:
		err = a.service.AcceptDecoyCall(ctx)
	case StepDecline:
		err = a.service.DeclineDecoyCall(ctx)
	default:
		return fmt.Errorf("unknown step %q", step.Kind)
	}

	if err != nil {
		if errors.Is(err, primary.ErrActionGated) {
			fmt.Fprintf(a.out, "%s %s: %v\n", color.New(color.FgYellow).Sprint("✗"), step.Kind, err)
			return errGated
		}
		return fmt.Errorf("%s failed: %w", step.Kind, err)
	}

	phase, err := a.service.CurrentPhase(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "→ %-8s %s\n", step.Kind, phase)
	return nil
}

// PrintView prints the full screen state.
func (a *EmergencyAdapter) PrintView(ctx context.Context) error {
	view, err := a.service.View(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nPhase:  %s\n", colorPhase(view.Phase))
	switch {
	case view.Decoy.Ringing:
		fmt.Fprintf(a.out, "Decoy:  ringing since %s\n", view.Decoy.TimeLabel)
	case view.Decoy.Pending:
		fmt.Fprintln(a.out, "Decoy:  incoming shortly")
	default:
		fmt.Fprintln(a.out, "Decoy:  none")
	}
	fmt.Fprintf(a.out, "Actions: press=%s share=%s decoy=%s\n\n",
		onOff(view.PressEnabled), onOff(view.ShareEnabled), onOff(view.DecoyEnabled))
	return nil
}

func colorPhase(p primary.Phase) string {
	switch p.Kind {
	case primary.PhaseActive:
		return color.New(color.FgRed, color.Bold).Sprint(p.String())
	case primary.PhaseCountingDown:
		return color.New(color.FgYellow).Sprint(p.String())
	default:
		return p.String()
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
