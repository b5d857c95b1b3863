package requests_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
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
	requests, err := h.service.GetOpenRequests(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	requestDTOs := make([]dto.Request, 0, len(requests))
	for i := range requests {
		requestDTOs = append(requestDTOs, requestToDTO(&requests[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(requestDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func requestToDTO(request *entities.Request) dto.Request {
	requestDTO := dto.Request{
		Id:        request.ID,
		Requester: participantToDTO(request.Requester),
		Title:     request.Title,
		Category:  request.Category,
		BudgetMin: request.BudgetMin,
		BudgetMax: request.BudgetMax,
		Status:    dto.RequestStatus(request.Status),
	}
	if request.Description != "" {
		requestDTO.Description = &request.Description
	}
	if !request.CreatedAt.IsZero() {
		requestDTO.CreatedAt = &request.CreatedAt
	}
	return requestDTO
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
