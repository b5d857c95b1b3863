package provider_stats_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	stats, err := h.service.ProviderStats(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	statsDTO := dto.ProviderStats{
		TotalEarnings:   stats.TotalEarnings,
		AverageRating:   stats.AverageRating,
		RatingsCount:    stats.RatingsCount,
		CompletedOrders: stats.CompletedOrders,
	}
	if len(stats.RatingBreakdown) > 0 {
		breakdown := make(map[string]int64, len(stats.RatingBreakdown))
		for rating, count := range stats.RatingBreakdown {
			breakdown[strconv.Itoa(rating)] = count
		}
		statsDTO.RatingBreakdown = &breakdown
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(statsDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
