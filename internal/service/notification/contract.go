//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error)
	GetByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error)
}
