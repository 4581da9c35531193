package app

import (
	"context"
	"fmt"

	"github.com/example/circle/internal/core/contact"
	"github.com/example/circle/internal/ports/primary"
	"github.com/example/circle/internal/ports/secondary"
)

// NotificationServiceImpl implements the NotificationService interface.
type NotificationServiceImpl struct {
	notificationRepo secondary.NotificationRepository
	alertRepo        secondary.ContactAlertRepository
}

// NewNotificationService creates a new NotificationService with injected dependencies.
func NewNotificationService(notificationRepo secondary.NotificationRepository, alertRepo secondary.ContactAlertRepository) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		alertRepo:        alertRepo,
	}
}

// ListNotifications retrieves delivered notifications matching the given filters.
func (s *NotificationServiceImpl) ListNotifications(ctx context.Context, filters primary.NotificationFilters) ([]*primary.Notification, error) {
	records, err := s.notificationRepo.List(ctx, secondary.NotificationFilters{
		SessionID: filters.SessionID,
		Kind:      filters.Kind,
		Limit:     filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*primary.Notification, len(records))
	for i, r := range records {
		notifications[i] = &primary.Notification{
			ID:          r.ID,
			SessionID:   r.SessionID,
			Kind:        r.Kind,
			Title:       r.Title,
			Description: r.Description,
			Variant:     r.Variant,
			CreatedAt:   r.CreatedAt,
		}
	}
	return notifications, nil
}

// PruneNotifications deletes notifications older than the specified number of days.
func (s *NotificationServiceImpl) PruneNotifications(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays < 0 {
		return 0, fmt.Errorf("days must not be negative, got %d", olderThanDays)
	}
	return s.notificationRepo.PruneOlderThan(ctx, olderThanDays)
}

// ListContactAlerts retrieves outbox entries matching the given filters.
func (s *NotificationServiceImpl) ListContactAlerts(ctx context.Context, filters primary.ContactAlertFilters) ([]*primary.ContactAlert, error) {
	records, err := s.alertRepo.List(ctx, secondary.ContactAlertFilters{
		SessionID: filters.SessionID,
		Status:    filters.Status,
		Limit:     filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contact alerts: %w", err)
	}

	alerts := make([]*primary.ContactAlert, len(records))
	for i, r := range records {
		alerts[i] = &primary.ContactAlert{
			ID:          r.ID,
			SessionID:   r.SessionID,
			ContactID:   r.ContactID,
			ContactName: r.ContactName,
			Message:     r.Message,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return alerts, nil
}

// MarkContactAlert records the delivery outcome of an outbox entry.
func (s *NotificationServiceImpl) MarkContactAlert(ctx context.Context, alertID, status string) error {
	record, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return err
	}

	guard := contact.CanMarkAlert(contact.StatusTransitionContext{
		AlertID:       alertID,
		CurrentStatus: record.Status,
		NewStatus:     status,
	})
	if err := guard.Error(); err != nil {
		return err
	}

	return s.alertRepo.UpdateStatus(ctx, alertID, status)
}

// Ensure NotificationServiceImpl implements the interface
var _ primary.NotificationService = (*NotificationServiceImpl)(nil)
