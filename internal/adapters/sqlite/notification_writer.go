package sqlite

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/example/circle/internal/ctxutil"
	"github.com/example/circle/internal/ports/secondary"
)

// NotificationWriter implements secondary.ToastSink by storing every toast
// in the notification history.
type NotificationWriter struct {
	repo   secondary.NotificationRepository
	logger *slog.Logger
}

// NewNotificationWriter creates a new NotificationWriter.
func NewNotificationWriter(repo secondary.NotificationRepository, logger *slog.Logger) *NotificationWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationWriter{repo: repo, logger: logger}
}

// Show records the toast under the session found in ctx.
// Storage failures are logged, never returned: history is best effort.
func (w *NotificationWriter) Show(ctx context.Context, toast secondary.Toast) {
	sessionID := ctxutil.SessionFromContext(ctx)
	if sessionID == "" {
		// Toasts outside a screen session are not recorded
		return
	}

	record := &secondary.NotificationRecord{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Kind:        toast.Kind,
		Title:       toast.Title,
		Description: toast.Description,
		Variant:     string(toast.Variant),
	}

	if err := w.repo.Create(ctx, record); err != nil {
		w.logger.WarnContext(ctx, "could not record notification", "kind", toast.Kind, "error", err)
	}
}

// Ensure NotificationWriter implements the interface
var _ secondary.ToastSink = (*NotificationWriter)(nil)
