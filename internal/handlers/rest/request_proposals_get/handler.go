package request_proposals_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/catalog"
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

	proposals, err := h.service.GetProposalsForRequest(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, catalog.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	proposalDTOs := make([]dto.Proposal, 0, len(proposals))
	for i := range proposals {
		proposalDTOs = append(proposalDTOs, proposalToDTO(&proposals[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(proposalDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func proposalToDTO(proposal *entities.Proposal) dto.Proposal {
	proposalDTO := dto.Proposal{
		Id:        proposal.ID,
		RequestId: proposal.RequestID,
		Provider:  participantToDTO(proposal.Provider),
		Price:     proposal.Price,
	}
	if proposal.ProviderRating != 0 {
		proposalDTO.ProviderRating = &proposal.ProviderRating
	}
	if proposal.ProviderReviews != 0 {
		proposalDTO.ProviderReviews = &proposal.ProviderReviews
	}
	if proposal.Message != "" {
		proposalDTO.Message = &proposal.Message
	}
	if proposal.Timeline != "" {
		proposalDTO.Timeline = &proposal.Timeline
	}
	if !proposal.CreatedAt.IsZero() {
		proposalDTO.CreatedAt = &proposal.CreatedAt
	}
	return proposalDTO
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
