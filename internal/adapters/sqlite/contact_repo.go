// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/circle/internal/ports/secondary"
)

// ContactRepository implements secondary.ContactRepository with SQLite.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new SQLite contact repository.
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create persists a new contact.
func (r *ContactRepository) Create(ctx context.Context, contact *secondary.ContactRecord) error {
	var relation sql.NullString
	if contact.Relation != "" {
		relation = sql.NullString{String: contact.Relation, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO contacts (id, name, phone, relation) VALUES (?, ?, ?, ?)",
		contact.ID, contact.Name, contact.Phone, relation,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

// GetByID retrieves a contact by its ID.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*secondary.ContactRecord, error) {
	var (
		relation  sql.NullString
		createdAt time.Time
	)

	record := &secondary.ContactRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, phone, relation, created_at FROM contacts WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Phone, &relation, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("contact %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	record.Relation = relation.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// List retrieves all contacts ordered by ID.
func (r *ContactRepository) List(ctx context.Context) ([]*secondary.ContactRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, phone, relation, created_at FROM contacts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*secondary.ContactRecord
	for rows.Next() {
		var (
			relation  sql.NullString
			createdAt time.Time
		)

		record := &secondary.ContactRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Phone, &relation, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		record.Relation = relation.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		contacts = append(contacts, record)
	}

	return contacts, rows.Err()
}

// Delete removes a contact from persistence. Queued alerts for the contact go with it.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("contact %s not found", id)
	}

	return nil
}

// GetNextID returns the next available contact ID.
func (r *ContactRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	prefixLen := len("CON-") + 1
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM contacts", prefixLen),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next contact ID: %w", err)
	}

	return fmt.Sprintf("CON-%03d", maxID+1), nil
}

// Ensure ContactRepository implements the interface
var _ secondary.ContactRepository = (*ContactRepository)(nil)
