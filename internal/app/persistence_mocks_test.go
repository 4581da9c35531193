package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/example/circle/internal/ports/secondary"
)

var (
	_ secondary.ContactRepository      = (*mockContactRepository)(nil)
	_ secondary.NotificationRepository = (*mockNotificationRepository)(nil)
	_ secondary.ContactAlertRepository = (*mockContactAlertRepository)(nil)
)

// mockContactRepository implements secondary.ContactRepository for testing.
type mockContactRepository struct {
	contacts map[string]*secondary.ContactRecord
	nextID   int
	listErr  error
}

func newMockContactRepository() *mockContactRepository {
	return &mockContactRepository{
		contacts: make(map[string]*secondary.ContactRecord),
		nextID:   1,
	}
}

func (m *mockContactRepository) Create(ctx context.Context, c *secondary.ContactRecord) error {
	m.contacts[c.ID] = c
	return nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*secondary.ContactRecord, error) {
	if c, ok := m.contacts[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("contact %s not found", id)
}

func (m *mockContactRepository) List(ctx context.Context) ([]*secondary.ContactRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.ContactRecord
	for _, c := range m.contacts {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.contacts[id]; !ok {
		return fmt.Errorf("contact %s not found", id)
	}
	delete(m.contacts, id)
	return nil
}

func (m *mockContactRepository) GetNextID(ctx context.Context) (string, error) {
	id := m.nextID
	m.nextID++
	return fmt.Sprintf("CON-%03d", id), nil
}

// mockNotificationRepository implements secondary.NotificationRepository for testing.
type mockNotificationRepository struct {
	records    []*secondary.NotificationRecord
	pruneDays  int
	pruneCount int
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *secondary.NotificationRecord) error {
	m.records = append(m.records, n)
	return nil
}

func (m *mockNotificationRepository) List(ctx context.Context, filters secondary.NotificationFilters) ([]*secondary.NotificationRecord, error) {
	var result []*secondary.NotificationRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		n := m.records[i]
		if filters.SessionID != "" && n.SessionID != filters.SessionID {
			continue
		}
		if filters.Kind != "" && n.Kind != filters.Kind {
			continue
		}
		result = append(result, n)
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockNotificationRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	m.pruneDays = days
	return m.pruneCount, nil
}

// mockContactAlertRepository implements secondary.ContactAlertRepository for testing.
type mockContactAlertRepository struct {
	mu        sync.Mutex
	alerts    []*secondary.ContactAlertRecord
	createErr map[string]error // keyed by contact ID
}

func (m *mockContactAlertRepository) Create(ctx context.Context, a *secondary.ContactAlertRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.createErr[a.ContactID]; err != nil {
		return err
	}
	m.alerts = append(m.alerts, a)
	return nil
}

func (m *mockContactAlertRepository) GetByID(ctx context.Context, id string) (*secondary.ContactAlertRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockContactAlertRepository) List(ctx context.Context, filters secondary.ContactAlertFilters) ([]*secondary.ContactAlertRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*secondary.ContactAlertRecord
	for _, a := range m.alerts {
		if filters.SessionID != "" && a.SessionID != filters.SessionID {
			continue
		}
		if filters.Status != "" && a.Status != filters.Status {
			continue
		}
		result = append(result, a)
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockContactAlertRepository) UpdateStatus(ctx context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.alerts {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return errors.New("not found")
}
