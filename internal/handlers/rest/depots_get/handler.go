package depots_get

import (
	"encoding/json"
	"net/http"

	"containerhub/internal/generated/dto"
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
	gpgOnly := r.URL.Query().Get("gpg") == "true"

	depotEntities, err := h.service.GetDepots(r.Context(), gpgOnly)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	depotDTOs := make([]dto.Depot, len(depotEntities))
	for i, d := range depotEntities {
		depotDTOs[i].ID = d.ID
		depotDTOs[i].Name = d.Name
		depotDTOs[i].Address = d.Address
		depotDTOs[i].City = d.City
		depotDTOs[i].Latitude = d.Latitude
		depotDTOs[i].Longitude = d.Longitude
		depotDTOs[i].GPGEligible = d.GPGEligible
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(depotDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
