// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// Notifier surfaces user-visible feedback and downstream emergency notification.
// Every call is fire-and-forget: nothing is returned and nothing is retried
// by the caller. Delivery guarantees belong to the implementation.
// Implementations must be safe for concurrent use.
type Notifier interface {
	// Cancelled reports a stopped countdown. reason names what was cancelled.
	Cancelled(ctx context.Context, reason string)

	// AlertActivated reports that the alert went active.
	AlertActivated(ctx context.Context)

	// Deactivated reports that an active alert was switched off.
	Deactivated(ctx context.Context)

	// DecoyStarting reports that a decoy call will ring shortly.
	DecoyStarting(ctx context.Context)

	// DecoyEnded reports that an answered decoy call finished.
	DecoyEnded(ctx context.Context)

	// LocationShared reports a successful share.
	LocationShared(ctx context.Context, result ShareResult)

	// LocationShareFailed reports a failed share with a human-readable message.
	LocationShareFailed(ctx context.Context, message string)
}
