package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/example/circle/internal/core/contact"
	"github.com/example/circle/internal/ctxutil"
	"github.com/example/circle/internal/ports/secondary"
)

// ContactAlerter is a Notifier that queues one outbox entry per emergency
// contact when an alert goes active. Every other call is ignored.
type ContactAlerter struct {
	contactRepo secondary.ContactRepository
	alertRepo   secondary.ContactAlertRepository
	logger      *slog.Logger
}

// NewContactAlerter creates a new ContactAlerter.
func NewContactAlerter(contactRepo secondary.ContactRepository, alertRepo secondary.ContactAlertRepository, logger *slog.Logger) *ContactAlerter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactAlerter{
		contactRepo: contactRepo,
		alertRepo:   alertRepo,
		logger:      logger,
	}
}

// AlertActivated queues the outbox entries. Failures are logged per contact
// so one bad row does not stop the others.
func (a *ContactAlerter) AlertActivated(ctx context.Context) {
	contacts, err := a.contactRepo.List(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "could not load emergency contacts", "error", err)
		return
	}
	if len(contacts) == 0 {
		a.logger.WarnContext(ctx, "alert activated with no emergency contacts")
		return
	}

	sessionID := ctxutil.SessionFromContext(ctx)
	queued := 0
	for _, c := range contacts {
		record := &secondary.ContactAlertRecord{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			ContactID: c.ID,
			Message:   contact.AlertMessage(c.Name),
			Status:    contact.StatusPending,
		}
		if err := a.alertRepo.Create(ctx, record); err != nil {
			a.logger.ErrorContext(ctx, "could not queue contact alert", "contact", c.ID, "error", err)
			continue
		}
		queued++
	}
	a.logger.InfoContext(ctx, "contact alerts queued", "count", queued)
}

func (a *ContactAlerter) Cancelled(ctx context.Context, reason string) {}

func (a *ContactAlerter) Deactivated(ctx context.Context) {}

func (a *ContactAlerter) DecoyStarting(ctx context.Context) {}

func (a *ContactAlerter) DecoyEnded(ctx context.Context) {}

func (a *ContactAlerter) LocationShared(ctx context.Context, result secondary.ShareResult) {}

func (a *ContactAlerter) LocationShareFailed(ctx context.Context, message string) {}

// Ensure ContactAlerter implements the interface
var _ secondary.Notifier = (*ContactAlerter)(nil)
