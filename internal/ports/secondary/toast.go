package secondary

import "context"

// ToastVariant selects how a toast is styled.
type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// Toast is a short user-visible message.
type Toast struct {
	Kind        string // Notifier call that produced it, e.g. "alert_activated"
	Title       string
	Description string
	Variant     ToastVariant
}

// ToastSink displays or stores toasts. Show must not block for long and
// must be safe for concurrent use.
type ToastSink interface {
	Show(ctx context.Context, toast Toast)
}
