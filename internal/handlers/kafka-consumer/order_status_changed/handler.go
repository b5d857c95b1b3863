package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
	"marketplace/pkg/logger"
)

// statusChangedEvent mirrors the message the order service publishes to
// order.status.changed.
type statusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	BuyerID    string    `json:"buyer_id"`
	ProviderID string    `json:"provider_id"`
	FinalPrice *int64    `json:"final_price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled, the message stays unmarked and
// will be redelivered) and false to continue with the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	notifications, err := h.notificationService.RecordStatusChange(ctx, entities.OrderStatusChanged{
		OrderID:    event.OrderID,
		Status:     entities.OrderStatusType(event.Status),
		BuyerID:    event.BuyerID,
		ProviderID: event.ProviderID,
		FinalPrice: event.FinalPrice,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notification.ErrUnknownStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler unknown status for order")

		case errors.Is(err, notification.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler incomplete event for order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to record notifications")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("notifications", len(notifications)),
	).Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
