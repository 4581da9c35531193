package primary

import "context"

// ContactService defines the primary port for emergency contact operations.
type ContactService interface {
	// AddContact registers a new emergency contact.
	AddContact(ctx context.Context, req AddContactRequest) (*AddContactResponse, error)

	// GetContact retrieves a contact by ID.
	GetContact(ctx context.Context, contactID string) (*Contact, error)

	// ListContacts lists all emergency contacts.
	ListContacts(ctx context.Context) ([]*Contact, error)

	// RemoveContact deletes an emergency contact.
	RemoveContact(ctx context.Context, contactID string) error
}

// AddContactRequest contains parameters for adding a contact.
type AddContactRequest struct {
	Name     string
	Phone    string
	Relation string
}

// AddContactResponse contains the result of adding a contact.
type AddContactResponse struct {
	ContactID string
	Contact   *Contact
}

// Contact represents an emergency contact at the port boundary.
type Contact struct {
	ID        string
	Name      string
	Phone     string
	Relation  string // May be empty
	CreatedAt string
}
