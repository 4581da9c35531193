package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/example/circle/internal/core/alert"
	"github.com/example/circle/internal/core/decoy"
	"github.com/example/circle/internal/core/effects"
	"github.com/example/circle/internal/core/location"
	"github.com/example/circle/internal/ctxutil"
	"github.com/example/circle/internal/ports/primary"
	"github.com/example/circle/internal/ports/secondary"
)

// Errors returned by EmergencyServiceImpl.
var (
	ErrUnmounted   = primary.ErrUnmounted
	ErrActionGated = primary.ErrActionGated
)

// EmergencyDeps holds the collaborators of an EmergencyService.
type EmergencyDeps struct {
	Notifier   secondary.Notifier
	Geolocator secondary.Geolocator
	Sharer     secondary.Sharer
	Audio      secondary.AudioPlayer
	Scheduler  secondary.Scheduler
	Clock      secondary.Clock
	Logger     *slog.Logger

	// SoundResource overrides the alert sound when set.
	SoundResource string
}

// EmergencyServiceImpl implements the EmergencyService interface.
//
// All alert and decoy state is owned by a single event-loop goroutine.
// User calls and timer callbacks are submitted to the loop as closures and
// processed one at a time, so no transition is ever interleaved with another.
type EmergencyServiceImpl struct {
	notifier   secondary.Notifier
	geolocator secondary.Geolocator
	sharer     secondary.Sharer
	clock      secondary.Clock
	logger     *slog.Logger
	executor   *DefaultEffectExecutor
	sessionID  string

	requests  chan func(context.Context)
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	// Owned by the loop goroutine.
	alert alert.State
	decoy decoy.State
}

// NewEmergencyService mounts the SOS screen and starts its event loop.
// ctx is the context effects run under; cancelling it unmounts the screen.
// A session ID carried by ctx is also attached to share notifications.
func NewEmergencyService(ctx context.Context, deps EmergencyDeps) *EmergencyServiceImpl {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &EmergencyServiceImpl{
		notifier:   deps.Notifier,
		geolocator: deps.Geolocator,
		sharer:     deps.Sharer,
		clock:      deps.Clock,
		logger:     logger,
		sessionID:  ctxutil.SessionFromContext(ctx),
		requests:   make(chan func(context.Context)),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		alert:      alert.InitialState(),
	}
	s.executor = NewEffectExecutor(deps.Notifier, deps.Audio, deps.Scheduler, logger, deps.SoundResource, s.timerFired)

	go s.run(ctx)
	return s
}

// PressAlertButton starts, cancels or deactivates the alert.
// A press while the decoy call is ringing is ignored.
func (s *EmergencyServiceImpl) PressAlertButton(ctx context.Context) error {
	return s.do(ctx, func(loopCtx context.Context) {
		if gate := alert.CanPressAlert(s.gateContext()); !gate.Allowed {
			s.logger.DebugContext(loopCtx, "press ignored", "reason", gate.Reason)
			return
		}
		s.applyAlert(loopCtx, alert.Press())
	})
}

// CurrentPhase returns the alert phase.
func (s *EmergencyServiceImpl) CurrentPhase(ctx context.Context) (primary.Phase, error) {
	var phase primary.Phase
	err := s.do(ctx, func(context.Context) {
		phase = toPhase(s.alert)
	})
	return phase, err
}

// View returns a snapshot of the screen.
func (s *EmergencyServiceImpl) View(ctx context.Context) (primary.AlertView, error) {
	var view primary.AlertView
	err := s.do(ctx, func(context.Context) {
		gates := s.gateContext()
		view = primary.AlertView{
			Phase: toPhase(s.alert),
			Decoy: primary.DecoyView{
				Pending:   s.decoy.Phase == decoy.PhasePending,
				Ringing:   s.decoy.Ringing(),
				StartedAt: s.decoy.StartedAt,
				TimeLabel: s.decoy.TimeLabel(),
			},
			PressEnabled: alert.CanPressAlert(gates).Allowed,
			ShareEnabled: alert.CanShareLocation(gates).Allowed,
			DecoyEnabled: alert.CanStartDecoyCall(gates).Allowed,
		}
	})
	return view, err
}

// ShareLocation checks the gate on the event loop, then runs the share flow
// on the caller's goroutine. Once started, the flow completes regardless of
// later alert transitions.
func (s *EmergencyServiceImpl) ShareLocation(ctx context.Context) error {
	var gate alert.GuardResult
	if err := s.do(ctx, func(context.Context) {
		gate = alert.CanShareLocation(s.gateContext())
	}); err != nil {
		return err
	}
	if !gate.Allowed {
		return fmt.Errorf("%w: %s", ErrActionGated, gate.Reason)
	}

	if s.sessionID != "" && ctxutil.SessionFromContext(ctx) == "" {
		ctx = ctxutil.WithSessionID(ctx, s.sessionID)
	}

	pos, err := s.geolocator.CurrentPosition(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "could not get location", "error", err)
		s.notifier.LocationShareFailed(ctx, err.Error())
		return nil
	}

	p := location.Position{Latitude: pos.Latitude, Longitude: pos.Longitude}
	if err := p.Validate(); err != nil {
		s.logger.WarnContext(ctx, "invalid location", "error", err)
		s.notifier.LocationShareFailed(ctx, err.Error())
		return nil
	}

	payload := location.NewPayload(p)
	result, err := s.sharer.Share(ctx, secondary.SharePayload{
		Title: payload.Title,
		Text:  payload.Text,
		URL:   payload.URL,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "could not share location", "error", err)
		s.notifier.LocationShareFailed(ctx, err.Error())
		return nil
	}

	s.logger.InfoContext(ctx, "location shared", "method", result.Method)
	s.notifier.LocationShared(ctx, result)
	return nil
}

// StartDecoyCall schedules the incoming decoy call.
func (s *EmergencyServiceImpl) StartDecoyCall(ctx context.Context) error {
	var gate alert.GuardResult
	err := s.do(ctx, func(loopCtx context.Context) {
		gate = alert.CanStartDecoyCall(s.gateContext())
		if !gate.Allowed {
			s.logger.DebugContext(loopCtx, "decoy call rejected", "reason", gate.Reason)
			return
		}
		next, effs := decoy.Start(s.decoy)
		s.decoy = next
		s.execute(loopCtx, effs)
	})
	if err != nil {
		return err
	}
	if !gate.Allowed {
		return fmt.Errorf("%w: %s", ErrActionGated, gate.Reason)
	}
	return nil
}

// AcceptDecoyCall answers the ringing decoy call. Ignored when nothing rings.
func (s *EmergencyServiceImpl) AcceptDecoyCall(ctx context.Context) error {
	return s.do(ctx, func(loopCtx context.Context) {
		next, effs := decoy.Accept(s.decoy)
		s.decoy = next
		s.execute(loopCtx, effs)
	})
}

// DeclineDecoyCall dismisses the ringing decoy call. Ignored when nothing rings.
func (s *EmergencyServiceImpl) DeclineDecoyCall(ctx context.Context) error {
	return s.do(ctx, func(context.Context) {
		s.decoy = decoy.Decline(s.decoy)
	})
}

// Close unmounts the screen. Pending timers are cancelled and any timer
// that still fires afterwards is dropped. Safe to call more than once.
func (s *EmergencyServiceImpl) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
	return nil
}

func (s *EmergencyServiceImpl) run(ctx context.Context) {
	defer close(s.done)
	s.logger.DebugContext(ctx, "emergency screen mounted")

	for {
		select {
		case fn := <-s.requests:
			fn(ctx)
		case <-s.stop:
			s.unmount(ctx)
			return
		case <-ctx.Done():
			s.unmount(context.WithoutCancel(ctx))
			return
		}
	}
}

// do submits fn to the event loop and waits until it has run.
func (s *EmergencyServiceImpl) do(ctx context.Context, fn func(context.Context)) error {
	processed := make(chan struct{})
	req := func(loopCtx context.Context) {
		defer close(processed)
		fn(loopCtx)
	}

	select {
	case s.requests <- req:
	case <-s.done:
		return ErrUnmounted
	case <-ctx.Done():
		return ctx.Err()
	}

	// A received request always runs to completion.
	<-processed
	return nil
}

// timerFired runs on the scheduler's goroutine.
func (s *EmergencyServiceImpl) timerFired(name effects.TimerName, generation uint64) {
	_ = s.do(context.Background(), func(loopCtx context.Context) {
		s.executor.Fired(name, generation)

		switch name {
		case effects.TimerAlertTick:
			s.applyAlert(loopCtx, alert.Tick(generation))
		case effects.TimerDecoyCall:
			next := decoy.Fire(s.decoy, generation, s.clock.Now())
			if next.Ringing() && !s.decoy.Ringing() {
				s.logger.InfoContext(loopCtx, "decoy call ringing", "at", next.TimeLabel())
			}
			s.decoy = next
		}
	})
}

func (s *EmergencyServiceImpl) applyAlert(ctx context.Context, ev alert.Event) {
	next, effs := alert.Transition(s.alert, ev)
	if next == s.alert && len(effs) == 0 {
		s.logger.DebugContext(ctx, "stale alert event ignored", "event", ev.Kind, "state", s.alert.String())
		return
	}
	s.alert = next
	s.execute(ctx, effs)
}

func (s *EmergencyServiceImpl) unmount(ctx context.Context) {
	var effs []effects.Effect
	s.alert, effs = alert.Transition(s.alert, alert.Unmount())
	s.execute(ctx, effs)
	s.decoy, effs = decoy.Unmount(s.decoy)
	s.execute(ctx, effs)
	s.logger.DebugContext(ctx, "emergency screen unmounted")
}

func (s *EmergencyServiceImpl) execute(ctx context.Context, effs []effects.Effect) {
	if err := s.executor.Execute(ctx, effs); err != nil {
		s.logger.ErrorContext(ctx, "effect failed", "error", err)
	}
}

func (s *EmergencyServiceImpl) gateContext() alert.GateContext {
	return alert.GateContext{
		Phase:        s.alert.Phase,
		DecoyRinging: s.decoy.Ringing(),
	}
}

func toPhase(s alert.State) primary.Phase {
	switch s.Phase {
	case alert.PhaseCountingDown:
		return primary.Phase{Kind: primary.PhaseCountingDown, SecondsRemaining: s.SecondsRemaining}
	case alert.PhaseActive:
		return primary.Phase{Kind: primary.PhaseActive}
	default:
		return primary.Phase{Kind: primary.PhaseIdle}
	}
}

// Ensure EmergencyServiceImpl implements the interface
var _ primary.EmergencyService = (*EmergencyServiceImpl)(nil)
