// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/circle/internal/core/effects"
	"github.com/example/circle/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// TimerFunc receives a fired timer together with the generation it was armed for.
type TimerFunc func(name effects.TimerName, generation uint64)

type armedTimer struct {
	timer      secondary.Timer
	generation uint64
}

// DefaultEffectExecutor implements EffectExecutor with real I/O.
// It is not safe for concurrent use; the emergency event loop owns it.
type DefaultEffectExecutor struct {
	notifier      secondary.Notifier
	audio         secondary.AudioPlayer
	scheduler     secondary.Scheduler
	logger        *slog.Logger
	soundResource string
	onTimer       TimerFunc
	timers        map[effects.TimerName]armedTimer
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
// onTimer is called from the scheduler's goroutine when a timer fires.
// A non-empty soundResource replaces the resource named by sound effects.
func NewEffectExecutor(notifier secondary.Notifier, audio secondary.AudioPlayer, scheduler secondary.Scheduler, logger *slog.Logger, soundResource string, onTimer TimerFunc) *DefaultEffectExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultEffectExecutor{
		notifier:      notifier,
		audio:         audio,
		scheduler:     scheduler,
		logger:        logger,
		soundResource: soundResource,
		onTimer:       onTimer,
		timers:        make(map[effects.TimerName]armedTimer),
	}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

// Pending reports whether a timer with the given name is armed.
func (e *DefaultEffectExecutor) Pending(name effects.TimerName) bool {
	_, ok := e.timers[name]
	return ok
}

// Fired forgets a timer once its callback was delivered.
func (e *DefaultEffectExecutor) Fired(name effects.TimerName, generation uint64) {
	if armed, ok := e.timers[name]; ok && armed.generation == generation {
		delete(e.timers, name)
	}
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.NotifyEffect:
		return e.executeNotify(ctx, typed)
	case effects.ScheduleEffect:
		e.executeSchedule(typed)
		return nil
	case effects.CancelEffect:
		e.cancel(typed.Timer)
		return nil
	case effects.SoundEffect:
		e.executeSound(ctx, typed)
		return nil
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.executeLog(ctx, typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeNotify(ctx context.Context, eff effects.NotifyEffect) error {
	switch eff.Kind {
	case effects.NotifyCancelled:
		e.notifier.Cancelled(ctx, eff.Reason)
	case effects.NotifyAlertActivated:
		e.notifier.AlertActivated(ctx)
	case effects.NotifyDeactivated:
		e.notifier.Deactivated(ctx)
	case effects.NotifyDecoyStarting:
		e.notifier.DecoyStarting(ctx)
	case effects.NotifyDecoyEnded:
		e.notifier.DecoyEnded(ctx)
	default:
		return fmt.Errorf("unknown notification: %s", eff.Kind)
	}
	return nil
}

func (e *DefaultEffectExecutor) executeSchedule(eff effects.ScheduleEffect) {
	e.cancel(eff.Timer)

	name, generation := eff.Timer, eff.Generation
	timer := e.scheduler.AfterFunc(eff.Delay, func() {
		if e.onTimer != nil {
			e.onTimer(name, generation)
		}
	})
	e.timers[name] = armedTimer{timer: timer, generation: generation}
}

func (e *DefaultEffectExecutor) cancel(name effects.TimerName) {
	if armed, ok := e.timers[name]; ok {
		armed.timer.Stop()
		delete(e.timers, name)
	}
}

// executeSound plays the resource. Playback problems never fail the transition.
func (e *DefaultEffectExecutor) executeSound(ctx context.Context, eff effects.SoundEffect) {
	resource := eff.Resource
	if e.soundResource != "" {
		resource = e.soundResource
	}
	if e.audio == nil {
		e.logger.WarnContext(ctx, "could not play alert sound", "resource", resource, "error", "no audio player")
		return
	}
	if err := e.audio.Play(ctx, resource); err != nil {
		e.logger.WarnContext(ctx, "could not play alert sound", "resource", resource, "error", err)
	}
}

func (e *DefaultEffectExecutor) executeLog(ctx context.Context, eff effects.LogEffect) {
	args := make([]any, 0, len(eff.Fields)*2)
	for k, v := range eff.Fields {
		args = append(args, k, v)
	}
	e.logger.Log(ctx, parseLevel(eff.Level), eff.Message, args...)
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
