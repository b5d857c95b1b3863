package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"marketplace/internal/entities"
)

// Notification records a human-readable feed entry for each side of an order
// whenever its status changes. Entries are append-only.
type Notification struct {
	repository Repository
}

func New(repository Repository) *Notification {
	return &Notification{
		repository: repository,
	}
}

// RecordStatusChange writes one feed entry per affected participant. The
// recipient is the side that did not trigger the transition, except that both
// sides learn about cancellation.
func (s *Notification) RecordStatusChange(ctx context.Context, event entities.OrderStatusChanged) ([]entities.Notification, error) {
	if strings.TrimSpace(event.OrderID) == "" ||
		strings.TrimSpace(event.BuyerID) == "" ||
		strings.TrimSpace(event.ProviderID) == "" {
		return nil, ErrMissingRequiredFields
	}

	recipients, message, err := routeEvent(event)
	if err != nil {
		return nil, err
	}

	createdAt := event.OccurredAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	notifications := make([]entities.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		created, err := s.repository.Create(ctx, entities.NotificationModify{
			ID:          pointer.ToString(notificationID(event, recipientID)),
			RecipientID: pointer.ToString(recipientID),
			OrderID:     pointer.ToString(event.OrderID),
			OrderStatus: &event.Status,
			Message:     pointer.ToString(message),
			CreatedAt:   &createdAt,
		})
		if err != nil {
			return nil, fmt.Errorf("record notification: %w", err)
		}
		notifications = append(notifications, *created)
	}

	return notifications, nil
}

func (s *Notification) ListForRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	if strings.TrimSpace(recipientID) == "" {
		return nil, ErrMissingRequiredFields
	}

	notifications, err := s.repository.GetByRecipient(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// notificationID is deterministic so a redelivered Kafka message maps to the
// same row instead of a duplicate feed entry.
func notificationID(event entities.OrderStatusChanged, recipientID string) string {
	name := strings.Join([]string{event.OrderID, event.Status.String(), recipientID}, "/")
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func routeEvent(event entities.OrderStatusChanged) ([]string, string, error) {
	switch event.Status {
	case entities.OrderAwaitingPrice:
		return []string{event.ProviderID}, "New order received, waiting for your price", nil
	case entities.OrderInProgress:
		return []string{event.BuyerID}, "Price is set, work has started", nil
	case entities.OrderAwaitingConfirmation:
		return []string{event.BuyerID}, "Work is finished, please confirm completion", nil
	case entities.OrderCompleted:
		return []string{event.ProviderID}, "Order completed, payment released", nil
	case entities.OrderCancelled:
		return []string{event.BuyerID, event.ProviderID}, "Order has been cancelled", nil
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownStatus, event.Status)
	}
}
