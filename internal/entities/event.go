package entities

import "time"

// OrderStatusChanged is emitted after every successful order transition,
// including creation.
type OrderStatusChanged struct {
	OrderID    string
	Status     OrderStatusType
	BuyerID    string
	ProviderID string
	FinalPrice *int64
	OccurredAt time.Time
}
