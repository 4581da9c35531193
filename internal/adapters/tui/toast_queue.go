package tui

import (
	"context"
	"sync"

	"github.com/example/circle/internal/ports/secondary"
)

// ToastQueue implements secondary.ToastSink by buffering toasts until the
// model drains them on its next tick. Show never blocks the caller.
type ToastQueue struct {
	mu     sync.Mutex
	toasts []secondary.Toast
}

// NewToastQueue creates an empty ToastQueue.
func NewToastQueue() *ToastQueue {
	return &ToastQueue{}
}

// Show queues the toast.
func (q *ToastQueue) Show(ctx context.Context, toast secondary.Toast) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.toasts = append(q.toasts, toast)
}

// Drain returns and clears the queued toasts in arrival order.
func (q *ToastQueue) Drain() []secondary.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.toasts
	q.toasts = nil
	return out
}

// Ensure ToastQueue implements the interface
var _ secondary.ToastSink = (*ToastQueue)(nil)
