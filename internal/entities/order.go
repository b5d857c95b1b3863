package entities

import "time"

type Order struct {
	ID          string
	ServiceID   *string
	Buyer       Participant
	Provider    Participant
	Status      OrderStatusType
	BasePrice   int64
	FinalPrice  *int64
	PriceFixed  bool
	Note        string
	Rating      *int
	Review      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

type OrderStatusType string

const (
	OrderAwaitingPrice        OrderStatusType = "awaiting-price"
	OrderInProgress           OrderStatusType = "in-progress"
	OrderAwaitingConfirmation OrderStatusType = "awaiting-confirmation"
	OrderCompleted            OrderStatusType = "completed"
	OrderCancelled            OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal reports whether no further transition may leave the status.
func (s OrderStatusType) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

type OrderModify struct {
	ID          *string
	Status      *OrderStatusType
	FinalPrice  *int64
	PriceFixed  *bool
	Rating      *int
	Review      *string
	UpdatedAt   *time.Time
	CompletedAt *time.Time
}
