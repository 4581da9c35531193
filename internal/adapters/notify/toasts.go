// Package notify adapts notifier calls into toasts and fans them out.
package notify

import (
	"context"

	"github.com/example/circle/internal/ports/secondary"
)

// Toast kinds, one per Notifier method.
const (
	KindCancelled           = "cancelled"
	KindAlertActivated      = "alert_activated"
	KindDeactivated         = "deactivated"
	KindDecoyStarting       = "decoy_starting"
	KindDecoyEnded          = "decoy_ended"
	KindLocationShared      = "location_shared"
	KindLocationShareFailed = "location_share_failed"
)

// Toasts implements secondary.Notifier by turning every call into a toast
// for each of its sinks.
type Toasts struct {
	sinks []secondary.ToastSink
}

// NewToasts creates a Toasts notifier. Nil sinks are skipped.
func NewToasts(sinks ...secondary.ToastSink) *Toasts {
	t := &Toasts{}
	for _, s := range sinks {
		if s != nil {
			t.sinks = append(t.sinks, s)
		}
	}
	return t
}

func (t *Toasts) Cancelled(ctx context.Context, reason string) {
	t.show(ctx, secondary.Toast{
		Kind:        KindCancelled,
		Title:       "SOS Cancelled",
		Description: "Emergency alert countdown stopped.",
		Variant:     secondary.ToastDefault,
	})
}

func (t *Toasts) AlertActivated(ctx context.Context) {
	t.show(ctx, secondary.Toast{
		Kind:        KindAlertActivated,
		Title:       "SOS Activated!",
		Description: "Emergency contacts notified and location shared.",
		Variant:     secondary.ToastDestructive,
	})
}

func (t *Toasts) Deactivated(ctx context.Context) {
	t.show(ctx, secondary.Toast{
		Kind:        KindDeactivated,
		Title:       "SOS Deactivated",
		Description: "Emergency alert has been cancelled.",
		Variant:     secondary.ToastDefault,
	})
}

func (t *Toasts) DecoyStarting(ctx context.Context) {
	t.show(ctx, secondary.Toast{
		Kind:        KindDecoyStarting,
		Title:       "Initiating Fake Call...",
		Description: "The fake call screen will appear shortly.",
		Variant:     secondary.ToastDefault,
	})
}

func (t *Toasts) DecoyEnded(ctx context.Context) {
	t.show(ctx, secondary.Toast{
		Kind:    KindDecoyEnded,
		Title:   "Fake call ended",
		Variant: secondary.ToastDefault,
	})
}

// LocationShared titles the toast after the method that was used.
func (t *Toasts) LocationShared(ctx context.Context, result secondary.ShareResult) {
	toast := secondary.Toast{
		Kind:        KindLocationShared,
		Title:       "Location Shared",
		Description: "Your location has been prepared for sharing.",
		Variant:     secondary.ToastDefault,
	}
	if result.Method == secondary.ShareMethodClipboard {
		toast.Title = "Location Copied"
		toast.Description = "Location URL copied to clipboard. Paste it to share."
	}
	t.show(ctx, toast)
}

func (t *Toasts) LocationShareFailed(ctx context.Context, message string) {
	t.show(ctx, secondary.Toast{
		Kind:        KindLocationShareFailed,
		Title:       "Error getting location",
		Description: message,
		Variant:     secondary.ToastDestructive,
	})
}

func (t *Toasts) show(ctx context.Context, toast secondary.Toast) {
	for _, s := range t.sinks {
		s.Show(ctx, toast)
	}
}

// Ensure Toasts implements the interface
var _ secondary.Notifier = (*Toasts)(nil)
