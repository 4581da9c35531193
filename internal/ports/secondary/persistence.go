package secondary

import "context"

// ContactRepository defines the secondary port for emergency contact persistence.
type ContactRepository interface {
	// Create persists a new contact.
	Create(ctx context.Context, contact *ContactRecord) error

	// GetByID retrieves a contact by its ID.
	GetByID(ctx context.Context, id string) (*ContactRecord, error)

	// List retrieves all contacts ordered by ID.
	List(ctx context.Context) ([]*ContactRecord, error)

	// Delete removes a contact from persistence.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available contact ID.
	GetNextID(ctx context.Context) (string, error)
}

// ContactRecord represents an emergency contact as stored in persistence.
type ContactRecord struct {
	ID        string
	Name      string
	Phone     string
	Relation  string // Empty string means null
	CreatedAt string
}

// NotificationRepository defines the secondary port for notification history.
type NotificationRepository interface {
	// Create persists a delivered notification.
	Create(ctx context.Context, notification *NotificationRecord) error

	// List retrieves notifications matching the given filters, newest first.
	List(ctx context.Context, filters NotificationFilters) ([]*NotificationRecord, error)

	// PruneOlderThan deletes notifications older than the given number of days.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// NotificationRecord represents a notification as stored in persistence.
type NotificationRecord struct {
	ID          string
	SessionID   string
	Kind        string
	Title       string
	Description string // Empty string means null
	Variant     string
	CreatedAt   string
}

// NotificationFilters contains filter options for querying notifications.
type NotificationFilters struct {
	SessionID string
	Kind      string
	Limit     int
}

// ContactAlertRepository defines the secondary port for the contact outbox.
type ContactAlertRepository interface {
	// Create queues an alert for a contact.
	Create(ctx context.Context, alert *ContactAlertRecord) error

	// GetByID retrieves an outbox entry by its ID.
	GetByID(ctx context.Context, id string) (*ContactAlertRecord, error)

	// List retrieves outbox entries matching the given filters, oldest first.
	List(ctx context.Context, filters ContactAlertFilters) ([]*ContactAlertRecord, error)

	// UpdateStatus records a delivery outcome.
	UpdateStatus(ctx context.Context, id, status string) error
}

// ContactAlertRecord represents an outbox entry as stored in persistence.
type ContactAlertRecord struct {
	ID          string
	SessionID   string
	ContactID   string
	ContactName string // Joined from contacts on read
	Message     string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// ContactAlertFilters contains filter options for querying the outbox.
type ContactAlertFilters struct {
	SessionID string
	Status    string
	Limit     int
}
