package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/circle/internal/ctxutil"
	"github.com/example/circle/internal/ports/secondary"
)

func newTestContactAlerter() (*ContactAlerter, *mockContactRepository, *mockContactAlertRepository) {
	contacts := newMockContactRepository()
	alerts := &mockContactAlertRepository{}
	return NewContactAlerter(contacts, alerts, discardLogger()), contacts, alerts
}

func TestContactAlerter_QueuesOnePerContact(t *testing.T) {
	alerter, contacts, alerts := newTestContactAlerter()
	contacts.contacts["CON-001"] = &secondary.ContactRecord{ID: "CON-001", Name: "Asha"}
	contacts.contacts["CON-002"] = &secondary.ContactRecord{ID: "CON-002", Name: "Bea"}

	alerter.AlertActivated(ctxutil.WithSessionID(context.Background(), "sess-1"))

	if len(alerts.alerts) != 2 {
		t.Fatalf("expected 2 queued alerts, got %d", len(alerts.alerts))
	}
	for _, a := range alerts.alerts {
		if a.SessionID != "sess-1" {
			t.Errorf("expected session sess-1, got %q", a.SessionID)
		}
		if a.Status != "pending" {
			t.Errorf("expected pending, got %q", a.Status)
		}
		if a.ID == "" {
			t.Error("expected generated ID")
		}
	}
	if alerts.alerts[0].Message != "Asha, I need help! My emergency alert was just activated." {
		t.Errorf("unexpected message %q", alerts.alerts[0].Message)
	}
}

func TestContactAlerter_ContinuesPastFailures(t *testing.T) {
	alerter, contacts, alerts := newTestContactAlerter()
	contacts.contacts["CON-001"] = &secondary.ContactRecord{ID: "CON-001", Name: "Asha"}
	contacts.contacts["CON-002"] = &secondary.ContactRecord{ID: "CON-002", Name: "Bea"}
	alerts.createErr = map[string]error{"CON-001": errors.New("disk full")}

	alerter.AlertActivated(context.Background())

	if len(alerts.alerts) != 1 || alerts.alerts[0].ContactID != "CON-002" {
		t.Errorf("expected the second contact to be queued, got %+v", alerts.alerts)
	}
}

func TestContactAlerter_NoContacts(t *testing.T) {
	alerter, _, alerts := newTestContactAlerter()

	alerter.AlertActivated(context.Background())

	if len(alerts.alerts) != 0 {
		t.Errorf("expected nothing queued, got %d", len(alerts.alerts))
	}
}

func TestContactAlerter_ListError(t *testing.T) {
	alerter, contacts, alerts := newTestContactAlerter()
	contacts.listErr = errors.New("db closed")

	alerter.AlertActivated(context.Background())

	if len(alerts.alerts) != 0 {
		t.Errorf("expected nothing queued, got %d", len(alerts.alerts))
	}
}

func TestContactAlerter_IgnoresOtherCalls(t *testing.T) {
	alerter, contacts, alerts := newTestContactAlerter()
	contacts.contacts["CON-001"] = &secondary.ContactRecord{ID: "CON-001", Name: "Asha"}
	ctx := context.Background()

	alerter.Cancelled(ctx, "countdown")
	alerter.Deactivated(ctx)
	alerter.DecoyStarting(ctx)
	alerter.DecoyEnded(ctx)
	alerter.LocationShared(ctx, secondary.ShareResult{Method: secondary.ShareMethodClipboard})
	alerter.LocationShareFailed(ctx, "denied")

	if len(alerts.alerts) != 0 {
		t.Errorf("expected only activation to queue alerts, got %d", len(alerts.alerts))
	}
}

func TestEmergencyService_ActivationQueuesContactAlerts(t *testing.T) {
	scheduler := newFakeScheduler()
	alerter, contacts, alerts := newTestContactAlerter()
	contacts.contacts["CON-001"] = &secondary.ContactRecord{ID: "CON-001", Name: "Asha"}

	ctx := ctxutil.WithSessionID(context.Background(), "sess-9")
	svc := NewEmergencyService(ctx, EmergencyDeps{
		Notifier:  alerter,
		Scheduler: scheduler,
		Clock:     scheduler,
		Logger:    discardLogger(),
	})
	defer svc.Close()

	svc.PressAlertButton(context.Background())
	scheduler.Advance(5 * time.Second)

	if len(alerts.alerts) != 1 || alerts.alerts[0].SessionID != "sess-9" {
		t.Errorf("expected one outbox row for the session, got %+v", alerts.alerts)
	}
}
