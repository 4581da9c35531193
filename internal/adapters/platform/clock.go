package platform

import (
	"time"

	"github.com/example/circle/internal/ports/secondary"
)

// RealScheduler implements secondary.Scheduler with time.AfterFunc.
type RealScheduler struct{}

// AfterFunc runs fn on its own goroutine after d.
func (RealScheduler) AfterFunc(d time.Duration, fn func()) secondary.Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock implements secondary.Clock with the local wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

var (
	_ secondary.Scheduler = RealScheduler{}
	_ secondary.Clock     = SystemClock{}
)
