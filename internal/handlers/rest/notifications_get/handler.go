package notifications_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/internal/service/notification"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	recipientID := r.URL.Query().Get("recipient_id")

	notifications, err := h.service.ListForRecipient(r.Context(), recipientID)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	notificationDTOs := make([]dto.Notification, 0, len(notifications))
	for _, notificationEntity := range notifications {
		notificationDTOs = append(notificationDTOs, dto.Notification{
			Id:          notificationEntity.ID,
			RecipientId: notificationEntity.RecipientID,
			OrderId:     notificationEntity.OrderID,
			OrderStatus: notificationEntity.OrderStatus.String(),
			Message:     notificationEntity.Message,
			CreatedAt:   notificationEntity.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(notificationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
