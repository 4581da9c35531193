package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/circle/internal/ports/secondary"
)

// ContactAlertRepository implements secondary.ContactAlertRepository with SQLite.
type ContactAlertRepository struct {
	db *sql.DB
}

// NewContactAlertRepository creates a new SQLite outbox repository.
func NewContactAlertRepository(db *sql.DB) *ContactAlertRepository {
	return &ContactAlertRepository{db: db}
}

const contactAlertColumns = `a.id, a.session_id, a.contact_id, COALESCE(c.name, ''), a.message, a.status, a.created_at, a.updated_at
	FROM contact_alerts a LEFT JOIN contacts c ON c.id = a.contact_id`

// Create queues an alert for a contact.
func (r *ContactAlertRepository) Create(ctx context.Context, alert *secondary.ContactAlertRecord) error {
	status := "pending"
	if alert.Status != "" {
		status = alert.Status
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO contact_alerts (id, session_id, contact_id, message, status) VALUES (?, ?, ?, ?, ?)",
		alert.ID, alert.SessionID, alert.ContactID, alert.Message, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact alert: %w", err)
	}

	return nil
}

// GetByID retrieves an outbox entry by its ID.
func (r *ContactAlertRepository) GetByID(ctx context.Context, id string) (*secondary.ContactAlertRecord, error) {
	record, err := scanContactAlert(r.db.QueryRowContext(ctx,
		"SELECT "+contactAlertColumns+" WHERE a.id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("contact alert %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact alert: %w", err)
	}
	return record, nil
}

// List retrieves outbox entries matching the given filters, oldest first.
func (r *ContactAlertRepository) List(ctx context.Context, filters secondary.ContactAlertFilters) ([]*secondary.ContactAlertRecord, error) {
	query := "SELECT " + contactAlertColumns + " WHERE 1=1"
	args := []any{}

	if filters.SessionID != "" {
		query += " AND a.session_id = ?"
		args = append(args, filters.SessionID)
	}

	if filters.Status != "" {
		query += " AND a.status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY a.created_at ASC, a.rowid ASC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*secondary.ContactAlertRecord
	for rows.Next() {
		record, err := scanContactAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact alert: %w", err)
		}
		alerts = append(alerts, record)
	}

	return alerts, rows.Err()
}

// UpdateStatus records a delivery outcome.
func (r *ContactAlertRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE contact_alerts SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact alert status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("contact alert %s not found", id)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContactAlert(row rowScanner) (*secondary.ContactAlertRecord, error) {
	var createdAt, updatedAt time.Time

	record := &secondary.ContactAlertRecord{}
	err := row.Scan(&record.ID,
		&record.SessionID,
		&record.ContactID,
		&record.ContactName,
		&record.Message,
		&record.Status,
		&createdAt,
		&updatedAt)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Ensure ContactAlertRepository implements the interface
var _ secondary.ContactAlertRepository = (*ContactAlertRepository)(nil)
