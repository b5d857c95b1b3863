package orderevents

import (
	"time"

	"marketplace/internal/entities"
)

// StatusChangedMessage is the wire format of an order status change. Messages
// are keyed by order id so transitions of one order stay in publish order.
type StatusChangedMessage struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	BuyerID    string    `json:"buyer_id"`
	ProviderID string    `json:"provider_id"`
	FinalPrice *int64    `json:"final_price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func FromDomain(event entities.OrderStatusChanged) StatusChangedMessage {
	return StatusChangedMessage{
		OrderID:    event.OrderID,
		Status:     event.Status.String(),
		BuyerID:    event.BuyerID,
		ProviderID: event.ProviderID,
		FinalPrice: event.FinalPrice,
		OccurredAt: event.OccurredAt,
	}
}

func ToDomain(message StatusChangedMessage) entities.OrderStatusChanged {
	return entities.OrderStatusChanged{
		OrderID:    message.OrderID,
		Status:     entities.OrderStatusType(message.Status),
		BuyerID:    message.BuyerID,
		ProviderID: message.ProviderID,
		FinalPrice: message.FinalPrice,
		OccurredAt: message.OccurredAt,
	}
}
