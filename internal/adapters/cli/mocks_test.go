package cli

import (
	"context"
	"fmt"

	"github.com/example/circle/internal/ports/primary"
)

// mockEmergencyService implements primary.EmergencyService for testing.
// Each action appends its name to calls; errs injects failures per action.
type mockEmergencyService struct {
	calls []string
	errs  map[string]error
	phase primary.Phase
	view  primary.AlertView
}

func (m *mockEmergencyService) act(name string) error {
	m.calls = append(m.calls, name)
	return m.errs[name]
}

func (m *mockEmergencyService) PressAlertButton(ctx context.Context) error { return m.act("press") }

func (m *mockEmergencyService) CurrentPhase(ctx context.Context) (primary.Phase, error) {
	return m.phase, m.errs["phase"]
}

func (m *mockEmergencyService) View(ctx context.Context) (primary.AlertView, error) {
	return m.view, m.errs["view"]
}

func (m *mockEmergencyService) ShareLocation(ctx context.Context) error { return m.act("share") }

func (m *mockEmergencyService) StartDecoyCall(ctx context.Context) error { return m.act("decoy") }

func (m *mockEmergencyService) AcceptDecoyCall(ctx context.Context) error { return m.act("accept") }

func (m *mockEmergencyService) DeclineDecoyCall(ctx context.Context) error { return m.act("decline") }

func (m *mockEmergencyService) Close() error { return nil }

// mockContactService implements primary.ContactService for testing.
type mockContactService struct {
	contacts   []*primary.Contact
	addErr     error
	removeErr  error
	lastAdd    primary.AddContactRequest
	lastRemove string
}

func (m *mockContactService) AddContact(ctx context.Context, req primary.AddContactRequest) (*primary.AddContactResponse, error) {
	m.lastAdd = req
	if m.addErr != nil {
		return nil, m.addErr
	}
	return &primary.AddContactResponse{
		ContactID: "CON-001",
		Contact:   &primary.Contact{ID: "CON-001", Name: req.Name, Phone: req.Phone},
	}, nil
}

func (m *mockContactService) GetContact(ctx context.Context, contactID string) (*primary.Contact, error) {
	for _, c := range m.contacts {
		if c.ID == contactID {
			return c, nil
		}
	}
	return nil, fmt.Errorf("contact %s not found", contactID)
}

func (m *mockContactService) ListContacts(ctx context.Context) ([]*primary.Contact, error) {
	return m.contacts, nil
}

func (m *mockContactService) RemoveContact(ctx context.Context, contactID string) error {
	m.lastRemove = contactID
	return m.removeErr
}

// mockNotificationService implements primary.NotificationService for testing.
type mockNotificationService struct {
	notifications []*primary.Notification
	alerts        []*primary.ContactAlert
	pruned        int
	markErr       error

	lastNotificationFilters primary.NotificationFilters
	lastAlertFilters        primary.ContactAlertFilters
	lastPruneDays           int
	lastMark                [2]string
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, filters primary.NotificationFilters) ([]*primary.Notification, error) {
	m.lastNotificationFilters = filters
	return m.notifications, nil
}

func (m *mockNotificationService) PruneNotifications(ctx context.Context, olderThanDays int) (int, error) {
	m.lastPruneDays = olderThanDays
	return m.pruned, nil
}

func (m *mockNotificationService) ListContactAlerts(ctx context.Context, filters primary.ContactAlertFilters) ([]*primary.ContactAlert, error) {
	m.lastAlertFilters = filters
	return m.alerts, nil
}

func (m *mockNotificationService) MarkContactAlert(ctx context.Context, alertID, status string) error {
	m.lastMark = [2]string{alertID, status}
	return m.markErr
}

var (
	_ primary.EmergencyService    = (*mockEmergencyService)(nil)
	_ primary.ContactService      = (*mockContactService)(nil)
	_ primary.NotificationService = (*mockNotificationService)(nil)
)
