package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/circle/internal/core/effects"
)

type unknownEffect struct{}

func (unknownEffect) EffectType() string { return "unknown" }

type firedTimer struct {
	name       effects.TimerName
	generation uint64
}

func newTestExecutor(audio *mockAudioPlayer, soundOverride string) (*DefaultEffectExecutor, *fakeScheduler, *mockNotifier, *[]firedTimer) {
	scheduler := newFakeScheduler()
	notifier := &mockNotifier{}
	fired := &[]firedTimer{}
	exec := NewEffectExecutor(notifier, nil, scheduler, discardLogger(), soundOverride, func(name effects.TimerName, gen uint64) {
		*fired = append(*fired, firedTimer{name, gen})
	})
	if audio != nil {
		exec.audio = audio
	}
	return exec, scheduler, notifier, fired
}

func TestEffectExecutor_Notify(t *testing.T) {
	tests := []struct {
		effect effects.NotifyEffect
		want   string
	}{
		{effects.NotifyEffect{Kind: effects.NotifyCancelled, Reason: "countdown"}, "cancelled:countdown"},
		{effects.NotifyEffect{Kind: effects.NotifyAlertActivated}, "alert_activated"},
		{effects.NotifyEffect{Kind: effects.NotifyDeactivated}, "deactivated"},
		{effects.NotifyEffect{Kind: effects.NotifyDecoyStarting}, "decoy_starting"},
		{effects.NotifyEffect{Kind: effects.NotifyDecoyEnded}, "decoy_ended"},
	}

	for _, tt := range tests {
		t.Run(string(tt.effect.Kind), func(t *testing.T) {
			exec, _, notifier, _ := newTestExecutor(nil, "")

			if err := exec.Execute(context.Background(), []effects.Effect{tt.effect}); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			calls := notifier.snapshot()
			if len(calls) != 1 || calls[0] != tt.want {
				t.Errorf("notifier calls = %v, want [%s]", calls, tt.want)
			}
		})
	}
}

func TestEffectExecutor_UnknownNotificationFails(t *testing.T) {
	exec, _, _, _ := newTestExecutor(nil, "")

	err := exec.Execute(context.Background(), []effects.Effect{effects.NotifyEffect{Kind: "bogus"}})
	if err == nil {
		t.Fatal("expected error for unknown notification")
	}
}

func TestEffectExecutor_UnknownEffectFails(t *testing.T) {
	exec, _, _, _ := newTestExecutor(nil, "")

	err := exec.Execute(context.Background(), []effects.Effect{unknownEffect{}})
	if err == nil {
		t.Fatal("expected error for unknown effect type")
	}
}

func TestEffectExecutor_ScheduleAndFire(t *testing.T) {
	exec, scheduler, _, fired := newTestExecutor(nil, "")
	ctx := context.Background()

	err := exec.Execute(ctx, []effects.Effect{
		effects.ScheduleEffect{Timer: effects.TimerAlertTick, Delay: time.Second, Generation: 7},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !exec.Pending(effects.TimerAlertTick) {
		t.Fatal("timer not pending after schedule")
	}

	scheduler.Advance(time.Second)
	if len(*fired) != 1 || (*fired)[0] != (firedTimer{effects.TimerAlertTick, 7}) {
		t.Fatalf("fired = %v, want one alert tick for generation 7", *fired)
	}

	exec.Fired(effects.TimerAlertTick, 7)
	if exec.Pending(effects.TimerAlertTick) {
		t.Error("timer still pending after Fired")
	}
}

func TestEffectExecutor_RescheduleReplacesTimer(t *testing.T) {
	exec, scheduler, _, fired := newTestExecutor(nil, "")
	ctx := context.Background()

	exec.Execute(ctx, []effects.Effect{effects.ScheduleEffect{Timer: effects.TimerDecoyCall, Delay: 2 * time.Second, Generation: 1}})
	scheduler.Advance(time.Second)
	exec.Execute(ctx, []effects.Effect{effects.ScheduleEffect{Timer: effects.TimerDecoyCall, Delay: 2 * time.Second, Generation: 2}})

	if live := scheduler.live(); live != 1 {
		t.Errorf("live timers = %d, want 1", live)
	}
	scheduler.Advance(5 * time.Second)
	if len(*fired) != 1 || (*fired)[0].generation != 2 {
		t.Errorf("fired = %v, want only generation 2", *fired)
	}
}

func TestEffectExecutor_FiredIgnoresOlderGeneration(t *testing.T) {
	exec, _, _, _ := newTestExecutor(nil, "")

	exec.Execute(context.Background(), []effects.Effect{effects.ScheduleEffect{Timer: effects.TimerAlertTick, Delay: time.Second, Generation: 3}})
	exec.Fired(effects.TimerAlertTick, 2)

	if !exec.Pending(effects.TimerAlertTick) {
		t.Error("older generation cleared the armed timer")
	}
}

func TestEffectExecutor_Cancel(t *testing.T) {
	exec, scheduler, _, fired := newTestExecutor(nil, "")
	ctx := context.Background()

	exec.Execute(ctx, []effects.Effect{
		effects.ScheduleEffect{Timer: effects.TimerAlertTick, Delay: time.Second, Generation: 1},
		effects.CancelEffect{Timer: effects.TimerAlertTick},
		effects.CancelEffect{Timer: effects.TimerDecoyCall},
	})

	if exec.Pending(effects.TimerAlertTick) {
		t.Error("timer pending after cancel")
	}
	scheduler.Advance(time.Minute)
	if len(*fired) != 0 {
		t.Errorf("cancelled timer fired: %v", *fired)
	}
}

func TestEffectExecutor_Sound(t *testing.T) {
	tests := []struct {
		name     string
		override string
		want     string
	}{
		{"default resource", "", "sounds/sos-alert.mp3"},
		{"configured override", "/tmp/siren.wav", "/tmp/siren.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audio := &mockAudioPlayer{}
			exec, _, _, _ := newTestExecutor(audio, tt.override)

			err := exec.Execute(context.Background(), []effects.Effect{effects.SoundEffect{Resource: "sounds/sos-alert.mp3"}})
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if plays := audio.plays(); len(plays) != 1 || plays[0] != tt.want {
				t.Errorf("plays = %v, want [%s]", plays, tt.want)
			}
		})
	}
}

func TestEffectExecutor_SoundFailureDoesNotFail(t *testing.T) {
	audio := &mockAudioPlayer{err: errors.New("autoplay blocked")}
	exec, _, _, _ := newTestExecutor(audio, "")

	if err := exec.Execute(context.Background(), []effects.Effect{effects.SoundEffect{Resource: "x"}}); err != nil {
		t.Errorf("Execute returned %v, want playback errors swallowed", err)
	}
}

func TestEffectExecutor_SoundWithoutPlayer(t *testing.T) {
	exec, _, _, _ := newTestExecutor(nil, "")

	if err := exec.Execute(context.Background(), []effects.Effect{effects.SoundEffect{Resource: "x"}}); err != nil {
		t.Errorf("Execute returned %v", err)
	}
}

func TestEffectExecutor_CompositeAndNoEffect(t *testing.T) {
	exec, _, notifier, _ := newTestExecutor(nil, "")

	err := exec.Execute(context.Background(), []effects.Effect{
		effects.CompositeEffect{Effects: []effects.Effect{
			effects.LogEffect{Level: "debug", Message: "x", Fields: map[string]any{"k": 1}},
			effects.NotifyEffect{Kind: effects.NotifyDeactivated},
			effects.NoEffect{},
		}},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if calls := notifier.snapshot(); len(calls) != 1 || calls[0] != "deactivated" {
		t.Errorf("notifier calls = %v", calls)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug": "DEBUG",
		"WARN":  "WARN",
		"error": "ERROR",
		"":      "INFO",
		"loud":  "INFO",
	}
	for in, want := range tests {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
