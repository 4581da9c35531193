package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/circle/internal/ports/secondary"
)

// NotificationRepository implements secondary.NotificationRepository with SQLite.
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new SQLite notification repository.
func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create persists a delivered notification.
func (r *NotificationRepository) Create(ctx context.Context, n *secondary.NotificationRecord) error {
	var description sql.NullString
	if n.Description != "" {
		description = sql.NullString{String: n.Description, Valid: true}
	}

	variant := string(secondary.ToastDefault)
	if n.Variant != "" {
		variant = n.Variant
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO notifications (id, session_id, kind, title, description, variant) VALUES (?, ?, ?, ?, ?, ?)",
		n.ID, n.SessionID, n.Kind, n.Title, description, variant,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// List retrieves notifications matching the given filters, newest first.
func (r *NotificationRepository) List(ctx context.Context, filters secondary.NotificationFilters) ([]*secondary.NotificationRecord, error) {
	query := "SELECT id, session_id, kind, title, description, variant, created_at FROM notifications WHERE 1=1"
	args := []any{}

	if filters.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, filters.SessionID)
	}

	if filters.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filters.Kind)
	}

	// rowid breaks ties between rows written within the same second
	query += " ORDER BY created_at DESC, rowid DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*secondary.NotificationRecord
	for rows.Next() {
		var (
			description sql.NullString
			createdAt   time.Time
		)

		record := &secondary.NotificationRecord{}
		err := rows.Scan(&record.ID,
			&record.SessionID,
			&record.Kind,
			&record.Title,
			&description,
			&record.Variant,
			&createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		record.Description = description.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		notifications = append(notifications, record)
	}

	return notifications, rows.Err()
}

// PruneOlderThan deletes notifications older than the given number of days.
// Zero days removes everything written before now.
func (r *NotificationRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM notifications WHERE created_at <= datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune notifications: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

// Ensure NotificationRepository implements the interface
var _ secondary.NotificationRepository = (*NotificationRepository)(nil)
