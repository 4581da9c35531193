package notify

import (
	"context"

	"github.com/example/circle/internal/ports/secondary"
)

// Fanout forwards every notifier call to each notifier in order.
type Fanout []secondary.Notifier

func (f Fanout) Cancelled(ctx context.Context, reason string) {
	for _, n := range f {
		n.Cancelled(ctx, reason)
	}
}

func (f Fanout) AlertActivated(ctx context.Context) {
	for _, n := range f {
		n.AlertActivated(ctx)
	}
}

func (f Fanout) Deactivated(ctx context.Context) {
	for _, n := range f {
		n.Deactivated(ctx)
	}
}

func (f Fanout) DecoyStarting(ctx context.Context) {
	for _, n := range f {
		n.DecoyStarting(ctx)
	}
}

func (f Fanout) DecoyEnded(ctx context.Context) {
	for _, n := range f {
		n.DecoyEnded(ctx)
	}
}

func (f Fanout) LocationShared(ctx context.Context, result secondary.ShareResult) {
	for _, n := range f {
		n.LocationShared(ctx, result)
	}
}

func (f Fanout) LocationShareFailed(ctx context.Context, message string) {
	for _, n := range f {
		n.LocationShareFailed(ctx, message)
	}
}

// Ensure Fanout implements the interface
var _ secondary.Notifier = Fanout(nil)
