package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/circle/internal/core/contact"
	"github.com/example/circle/internal/ports/primary"
	"github.com/example/circle/internal/ports/secondary"
)

// ContactServiceImpl implements the ContactService interface.
type ContactServiceImpl struct {
	contactRepo secondary.ContactRepository
}

// NewContactService creates a new ContactService with injected dependencies.
func NewContactService(contactRepo secondary.ContactRepository) *ContactServiceImpl {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
	}
}

// AddContact registers a new emergency contact. The phone is stored normalized.
func (s *ContactServiceImpl) AddContact(ctx context.Context, req primary.AddContactRequest) (*primary.AddContactResponse, error) {
	phone, _ := contact.NormalizePhone(req.Phone)

	taken := false
	if phone != "" {
		existing, err := s.contactRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing contacts: %w", err)
		}
		for _, c := range existing {
			if c.Phone == phone {
				taken = true
				break
			}
		}
	}

	guard := contact.CanAddContact(contact.AddContactContext{
		Name:       req.Name,
		Phone:      req.Phone,
		PhoneTaken: taken,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	nextID, err := s.contactRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate contact ID: %w", err)
	}

	record := &secondary.ContactRecord{
		ID:       nextID,
		Name:     strings.TrimSpace(req.Name),
		Phone:    phone,
		Relation: strings.TrimSpace(req.Relation),
	}
	if err := s.contactRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	created, err := s.contactRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created contact: %w", err)
	}

	return &primary.AddContactResponse{
		ContactID: created.ID,
		Contact:   s.recordToContact(created),
	}, nil
}

// GetContact retrieves a contact by ID.
func (s *ContactServiceImpl) GetContact(ctx context.Context, contactID string) (*primary.Contact, error) {
	record, err := s.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	return s.recordToContact(record), nil
}

// ListContacts lists all emergency contacts.
func (s *ContactServiceImpl) ListContacts(ctx context.Context) ([]*primary.Contact, error) {
	records, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := make([]*primary.Contact, len(records))
	for i, r := range records {
		contacts[i] = s.recordToContact(r)
	}
	return contacts, nil
}

// RemoveContact deletes an emergency contact.
func (s *ContactServiceImpl) RemoveContact(ctx context.Context, contactID string) error {
	return s.contactRepo.Delete(ctx, contactID)
}

// Helper methods

func (s *ContactServiceImpl) recordToContact(r *secondary.ContactRecord) *primary.Contact {
	return &primary.Contact{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Relation:  r.Relation,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure ContactServiceImpl implements the interface
var _ primary.ContactService = (*ContactServiceImpl)(nil)
