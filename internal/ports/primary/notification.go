package primary

import "context"

// NotificationService defines the primary port for notification history and the contact outbox.
type NotificationService interface {
	// ListNotifications retrieves delivered notifications matching the given filters.
	ListNotifications(ctx context.Context, filters NotificationFilters) ([]*Notification, error)

	// PruneNotifications deletes notifications older than the specified number of days.
	PruneNotifications(ctx context.Context, olderThanDays int) (int, error)

	// ListContactAlerts retrieves outbox entries matching the given filters.
	ListContactAlerts(ctx context.Context, filters ContactAlertFilters) ([]*ContactAlert, error)

	// MarkContactAlert records the delivery outcome of an outbox entry.
	MarkContactAlert(ctx context.Context, alertID, status string) error
}

// Notification represents a delivered notification at the port boundary.
type Notification struct {
	ID          string
	SessionID   string
	Kind        string
	Title       string
	Description string // May be empty
	Variant     string // 'default', 'destructive'
	CreatedAt   string
}

// NotificationFilters contains filter options for listing notifications.
type NotificationFilters struct {
	SessionID string
	Kind      string
	Limit     int
}

// ContactAlert represents a queued alert for one emergency contact.
type ContactAlert struct {
	ID          string
	SessionID   string
	ContactID   string
	ContactName string
	Message     string
	Status      string // 'pending', 'sent', 'failed'
	CreatedAt   string
	UpdatedAt   string
}

// ContactAlertFilters contains filter options for listing outbox entries.
type ContactAlertFilters struct {
	SessionID string
	Status    string
	Limit     int
}

// Contact alert status constants
const (
	ContactAlertStatusPending = "pending"
	ContactAlertStatusSent    = "sent"
	ContactAlertStatusFailed  = "failed"
)
