package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/circle/internal/ports/primary"
)

// NotificationAdapter translates CLI operations to NotificationService calls.
type NotificationAdapter struct {
	service primary.NotificationService
	out     io.Writer
}

// NewNotificationAdapter creates a new NotificationAdapter with the given service.
func NewNotificationAdapter(service primary.NotificationService, out io.Writer) *NotificationAdapter {
	return &NotificationAdapter{
		service: service,
		out:     out,
	}
}

// List prints the notification history, newest first.
func (a *NotificationAdapter) List(ctx context.Context, sessionID, kind string, limit int) error {
	notifications, err := a.service.ListNotifications(ctx, primary.NotificationFilters{
		SessionID: sessionID,
		Kind:      kind,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	if len(notifications) == 0 {
		fmt.Fprintln(a.out, "No notifications found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-8s %-22s %s\n", "TIME", "SESSION", "KIND", "TITLE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, n := range notifications {
		fmt.Fprintf(a.out, "%-20s %-8s %-22s %s\n", n.CreatedAt, shortID(n.SessionID), n.Kind, n.Title)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Clear removes notifications older than the given number of days.
func (a *NotificationAdapter) Clear(ctx context.Context, olderThanDays int) error {
	count, err := a.service.PruneNotifications(ctx, olderThanDays)
	if err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Removed %d notification(s)\n", count)
	return nil
}

// Outbox prints queued contact alerts, oldest first.
func (a *NotificationAdapter) Outbox(ctx context.Context, status string, limit int) error {
	alerts, err := a.service.ListContactAlerts(ctx, primary.ContactAlertFilters{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	if len(alerts) == 0 {
		fmt.Fprintln(a.out, "Outbox is empty")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-36s %-10s %-20s %-8s %s\n", "ID", "CONTACT", "NAME", "STATUS", "QUEUED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────────────────")
	for _, al := range alerts {
		fmt.Fprintf(a.out, "%-36s %-10s %-20s %-8s %s\n", al.ID, al.ContactID, al.ContactName, al.Status, al.CreatedAt)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Mark records the delivery outcome of an outbox entry.
func (a *NotificationAdapter) Mark(ctx context.Context, alertID, status string) error {
	if err := a.service.MarkContactAlert(ctx, alertID, status); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Contact alert %s marked %s\n", alertID, status)
	return nil
}

// shortID trims generated UUIDs for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
