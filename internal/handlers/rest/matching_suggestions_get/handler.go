package matching_suggestions_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"containerhub/internal/entities"
	"containerhub/internal/generated/dto"
	"containerhub/internal/service/matching"
	"containerhub/pkg/logger"
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
	truckingOrgID, err := uuid.Parse(r.URL.Query().Get("org"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	suggestions, err := h.service.GenerateSuggestions(r.Context(), truckingOrgID)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrInvalidOrgID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	suggestionDTOs := make([]dto.MatchSuggestion, len(suggestions))
	for i, s := range suggestions {
		suggestionDTOs[i] = toSuggestionDTO(s)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(suggestionDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toSuggestionDTO(s entities.MatchSuggestion) dto.MatchSuggestion {
	candidates := make([]dto.ScoredBooking, len(s.Candidates))
	for i, c := range s.Candidates {
		candidates[i] = dto.ScoredBooking{
			Booking: toBookingDTO(c.Booking),
			Score: dto.MatchingScore{
				Total:      c.Score.Total,
				Distance:   c.Score.Distance,
				Time:       c.Score.Time,
				Complexity: c.Score.Complexity,
				Quality:    c.Score.Quality,
				Partner:    c.Score.Partner,
			},
			EstimatedCostSaving:  c.EstimatedCostSaving.String(),
			EstimatedCO2SavingKg: c.EstimatedCO2SavingKg.String(),
		}
	}

	return dto.MatchSuggestion{
		Container:                 toContainerDTO(s.Container),
		Candidates:                candidates,
		TotalEstimatedCostSaving:  s.TotalEstimatedCostSaving.String(),
		TotalEstimatedCO2SavingKg: s.TotalEstimatedCO2SavingKg.String(),
	}
}

func toContainerDTO(c entities.ImportContainer) dto.Container {
	return dto.Container{
		ID:                  c.ID,
		ContainerNumber:     c.ContainerNumber,
		ContainerType:       c.ContainerType,
		DropoffAddress:      c.DropoffAddress,
		DropoffDepotID:      c.DropoffDepotID,
		AvailableFrom:       c.AvailableFrom,
		TruckingOrgID:       c.TruckingOrgID,
		ShippingLineOrgID:   c.ShippingLineOrgID,
		Status:              c.Status.String(),
		ListedOnMarketplace: c.ListedOnMarketplace,
		ConditionImageURLs:  c.ConditionImageURLs,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func toBookingDTO(b entities.ExportBooking) dto.Booking {
	return dto.Booking{
		ID:                    b.ID,
		BookingNumber:         b.BookingNumber,
		RequiredContainerType: b.RequiredContainerType,
		PickupAddress:         b.PickupAddress,
		PickupDepotID:         b.PickupDepotID,
		NeededBy:              b.NeededBy,
		TruckingOrgID:         b.TruckingOrgID,
		ShippingLineOrgID:     b.ShippingLineOrgID,
		Status:                b.Status.String(),
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}
