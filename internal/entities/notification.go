package entities

import "time"

type Notification struct {
	ID          string
	RecipientID string
	OrderID     string
	OrderStatus OrderStatusType
	Message     string
	CreatedAt   time.Time
}

type NotificationModify struct {
	ID          *string
	RecipientID *string
	OrderID     *string
	OrderStatus *OrderStatusType
	Message     *string
	CreatedAt   *time.Time
}
