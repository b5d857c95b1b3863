package order_from_proposal_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/catalog"
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
	var proposalAcceptDTO dto.ProposalAccept
	err := json.NewDecoder(r.Body).Decode(&proposalAcceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	buyer := entities.Participant{
		ID:   proposalAcceptDTO.BuyerId,
		Name: proposalAcceptDTO.BuyerName,
	}
	if proposalAcceptDTO.BuyerAvatar != nil {
		buyer.Avatar = *proposalAcceptDTO.BuyerAvatar
	}
	note := ""
	if proposalAcceptDTO.Note != nil {
		note = *proposalAcceptDTO.Note
	}

	orderEntity, err := h.service.CreateOrderFromProposal(r.Context(), proposalAcceptDTO.ProposalId, buyer, note)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, catalog.ErrProposalNotFound),
			errors.Is(err, catalog.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidParticipants):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
