package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/example/circle/internal/ports/secondary"
)

// discardLogger keeps test output quiet.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Ensure fakes implement the interfaces
var (
	_ secondary.Scheduler   = (*fakeScheduler)(nil)
	_ secondary.Clock       = (*fakeScheduler)(nil)
	_ secondary.Notifier    = (*mockNotifier)(nil)
	_ secondary.Geolocator  = (*mockGeolocator)(nil)
	_ secondary.Sharer      = (*mockSharer)(nil)
	_ secondary.AudioPlayer = (*mockAudioPlayer)(nil)
)

// fakeScheduler is a manual clock. Timers only fire inside Advance, in due
// order, on the goroutine calling Advance.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	seq    int
}

type fakeTimer struct {
	s       *fakeScheduler
	due     time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{now: time.Date(2026, 3, 8, 22, 15, 0, 0, time.UTC)}
}

func (f *fakeScheduler) AfterFunc(d time.Duration, fn func()) secondary.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{s: f, due: f.now.Add(d), seq: f.seq, fn: fn}
	f.seq++
	f.timers = append(f.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (f *fakeScheduler) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward, firing every live timer that falls due,
// including timers armed by earlier callbacks within the window.
func (f *fakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		var next *fakeTimer
		for _, t := range f.timers {
			if t.stopped || t.fired || t.due.After(target) {
				continue
			}
			if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
				next = t
			}
		}
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return
		}
		f.now = next.due
		next.fired = true
		fn := next.fn
		f.mu.Unlock()

		fn()
	}
}

// live counts timers that are neither stopped nor fired.
func (f *fakeScheduler) live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// mockNotifier records every call as "kind" or "kind:detail".
type mockNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (m *mockNotifier) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockNotifier) Cancelled(ctx context.Context, reason string) {
	m.record("cancelled:" + reason)
}

func (m *mockNotifier) AlertActivated(ctx context.Context) { m.record("alert_activated") }

func (m *mockNotifier) Deactivated(ctx context.Context) { m.record("deactivated") }

func (m *mockNotifier) DecoyStarting(ctx context.Context) { m.record("decoy_starting") }

func (m *mockNotifier) DecoyEnded(ctx context.Context) { m.record("decoy_ended") }

func (m *mockNotifier) LocationShared(ctx context.Context, result secondary.ShareResult) {
	m.record(fmt.Sprintf("location_shared:%s", result.Method))
}

func (m *mockNotifier) LocationShareFailed(ctx context.Context, message string) {
	m.record("location_share_failed:" + message)
}

func (m *mockNotifier) snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockNotifier) count(call string) int {
	n := 0
	for _, c := range m.snapshot() {
		if c == call {
			n++
		}
	}
	return n
}

type mockGeolocator struct {
	pos   secondary.Position
	err   error
	calls int
}

func (m *mockGeolocator) CurrentPosition(ctx context.Context) (secondary.Position, error) {
	m.calls++
	return m.pos, m.err
}

type mockSharer struct {
	method   secondary.ShareMethod
	err      error
	payloads []secondary.SharePayload
}

func (m *mockSharer) Share(ctx context.Context, payload secondary.SharePayload) (secondary.ShareResult, error) {
	m.payloads = append(m.payloads, payload)
	if m.err != nil {
		return secondary.ShareResult{}, m.err
	}
	return secondary.ShareResult{Method: m.method, Link: payload.URL}, nil
}

type mockAudioPlayer struct {
	mu     sync.Mutex
	played []string
	err    error
}

func (m *mockAudioPlayer) Play(ctx context.Context, resource string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.played = append(m.played, resource)
	return m.err
}

func (m *mockAudioPlayer) plays() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.played...)
}
