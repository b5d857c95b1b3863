package order_done_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/order"
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
	id := mux.Vars(r)["id"]

	var actorDTO dto.OrderActor
	err := json.NewDecoder(r.Body).Decode(&actorDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.MarkWorkDone(r.Context(), id, actorDTO.ActorId)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderToDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func orderToDTO(orderEntity *entities.Order) dto.Order {
	orderDTO := dto.Order{
		Id:          orderEntity.ID,
		ServiceId:   orderEntity.ServiceID,
		Buyer:       participantToDTO(orderEntity.Buyer),
		Provider:    participantToDTO(orderEntity.Provider),
		Status:      dto.OrderStatus(orderEntity.Status),
		BasePrice:   orderEntity.BasePrice,
		FinalPrice:  orderEntity.FinalPrice,
		PriceFixed:  orderEntity.PriceFixed,
		Rating:      orderEntity.Rating,
		Review:      orderEntity.Review,
		CreatedAt:   orderEntity.CreatedAt,
		UpdatedAt:   orderEntity.UpdatedAt,
		CompletedAt: orderEntity.CompletedAt,
	}
	if orderEntity.Note != "" {
		orderDTO.Note = &orderEntity.Note
	}
	return orderDTO
}

func participantToDTO(participant entities.Participant) dto.Participant {
	participantDTO := dto.Participant{
		Id:   participant.ID,
		Name: participant.Name,
	}
	if participant.Avatar != "" {
		participantDTO.Avatar = &participant.Avatar
	}
	return participantDTO
}
