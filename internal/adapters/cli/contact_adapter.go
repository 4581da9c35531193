package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/circle/internal/ports/primary"
)

// ContactAdapter is a thin adapter that translates CLI operations to ContactService calls.
// It depends only on the ContactService interface, enabling easy testing with mocks.
type ContactAdapter struct {
	service primary.ContactService
	out     io.Writer
}

// NewContactAdapter creates a new ContactAdapter with the given service.
func NewContactAdapter(service primary.ContactService, out io.Writer) *ContactAdapter {
	return &ContactAdapter{
		service: service,
		out:     out,
	}
}

// Add registers a new emergency contact.
func (a *ContactAdapter) Add(ctx context.Context, name, phone, relation string) error {
	resp, err := a.service.AddContact(ctx, primary.AddContactRequest{
		Name:     name,
		Phone:    phone,
		Relation: relation,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added contact %s: %s (%s)\n", resp.ContactID, resp.Contact.Name, resp.Contact.Phone)
	return nil
}

// List lists emergency contacts.
func (a *ContactAdapter) List(ctx context.Context) error {
	contacts, err := a.service.ListContacts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	if len(contacts) == 0 {
		fmt.Fprintln(a.out, "No emergency contacts. Add one with: circle contact add <name> <phone>")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-20s %-16s %s\n", "ID", "NAME", "PHONE", "RELATION")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, c := range contacts {
		relation := c.Relation
		if relation == "" {
			relation = "-"
		}
		fmt.Fprintf(a.out, "%-10s %-20s %-16s %s\n", c.ID, c.Name, c.Phone, relation)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Remove deletes an emergency contact.
func (a *ContactAdapter) Remove(ctx context.Context, contactID string) error {
	if err := a.service.RemoveContact(ctx, contactID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Contact %s removed\n", contactID)
	return nil
}
