package secondary

import (
	"context"
	"time"
)

// Position is a device position in decimal degrees.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Geolocator defines the secondary port for the platform geolocation capability.
type Geolocator interface {
	// CurrentPosition returns the current position, or an error when the
	// capability is unavailable or permission was denied.
	CurrentPosition(ctx context.Context) (Position, error)
}

// SharePayload is the content offered to a share mechanism.
type SharePayload struct {
	Title string
	Text  string
	URL   string
}

// ShareMethod names how a payload left the device.
type ShareMethod string

const (
	// ShareMethodNative means the platform share sheet accepted the payload.
	ShareMethodNative ShareMethod = "native"
	// ShareMethodClipboard means the payload text was copied to the clipboard.
	ShareMethodClipboard ShareMethod = "clipboard"
)

// ShareResult describes a completed share.
type ShareResult struct {
	Method ShareMethod
	Link   string
}

// Sharer defines the secondary port for sharing a payload.
// Variants are selected once at the boundary, never branched per call.
type Sharer interface {
	Share(ctx context.Context, payload SharePayload) (ShareResult, error)
}

// NativeShare defines the platform share capability.
type NativeShare interface {
	// Available reports whether the platform offers a share mechanism.
	Available() bool

	// Share hands the payload to the platform.
	Share(ctx context.Context, payload SharePayload) error
}

// Clipboard defines the platform clipboard capability.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// AudioPlayer defines the platform audio playback capability.
// Play must not block until playback finishes.
type AudioPlayer interface {
	Play(ctx context.Context, resource string) error
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer (false if it already fired or was stopped).
	Stop() bool
}

// Scheduler defines the secondary port for delayed callbacks.
type Scheduler interface {
	// AfterFunc runs fn on its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Clock defines the secondary port for reading the current time.
type Clock interface {
	Now() time.Time
}
