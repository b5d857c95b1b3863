package services_get

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
	category := r.URL.Query().Get("category")

	listings, err := h.service.GetServices(r.Context(), category)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	listingDTOs := make([]dto.ServiceListing, 0, len(listings))
	for i := range listings {
		listingDTOs = append(listingDTOs, listingToDTO(&listings[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(listingDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func listingToDTO(listing *entities.ServiceListing) dto.ServiceListing {
	listingDTO := dto.ServiceListing{
		Id:        listing.ID,
		Provider:  participantToDTO(listing.Provider),
		Title:     listing.Title,
		Category:  listing.Category,
		Price:     listing.Price,
		PriceType: dto.ServiceListingPriceType(listing.PriceType),
	}
	if listing.Description != "" {
		listingDTO.Description = &listing.Description
	}
	if !listing.CreatedAt.IsZero() {
		listingDTO.CreatedAt = &listing.CreatedAt
	}
	return listingDTO
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
