package notification

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error) {
	notificationModifyModel := FromDomainModify(&notificationModifyEntity)
	if notificationModifyModel.ID == nil ||
		notificationModifyModel.RecipientID == nil ||
		notificationModifyModel.OrderID == nil ||
		notificationModifyModel.OrderStatus == nil ||
		notificationModifyModel.Message == nil {
		return nil, notification.ErrMissingRequiredFields
	}

	query := `
		INSERT INTO notifications (id, recipient_id, order_id, order_status, message, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))
		RETURNING id, recipient_id, order_id, order_status, message, created_at`

	var notificationModel NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationModifyModel.ID,
		notificationModifyModel.RecipientID,
		notificationModifyModel.OrderID,
		notificationModifyModel.OrderStatus,
		notificationModifyModel.Message,
		notificationModifyModel.CreatedAt,
	).Scan(
		&notificationModel.ID,
		&notificationModel.RecipientID,
		&notificationModel.OrderID,
		&notificationModel.OrderStatus,
		&notificationModel.Message,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			// redelivered event, the original record stands
			return r.getByID(ctx, *notificationModifyModel.ID)
		}
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) getByID(ctx context.Context, id string) (*entities.Notification, error) {
	query := `
		SELECT id, recipient_id, order_id, order_status, message, created_at
		FROM notifications
		WHERE id = $1`

	var notificationModel NotificationDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&notificationModel.ID,
		&notificationModel.RecipientID,
		&notificationModel.OrderID,
		&notificationModel.OrderStatus,
		&notificationModel.Message,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository getbyid error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) GetByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	query := `
		SELECT id, recipient_id, order_id, order_status, message, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 8)
	for rows.Next() {
		var notificationModel NotificationDB
		err := rows.Scan(
			&notificationModel.ID,
			&notificationModel.RecipientID,
			&notificationModel.OrderID,
			&notificationModel.OrderStatus,
			&notificationModel.Message,
			&notificationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notificationModels = append(notificationModels, notificationModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}
