package containers_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"containerhub/internal/generated/dto"
	"containerhub/internal/service/container"
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

	containerEntities, err := h.service.GetContainers(r.Context(), truckingOrgID)
	if err != nil {
		switch {
		case errors.Is(err, container.ErrInvalidOrgID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	containerDTOs := make([]dto.Container, len(containerEntities))
	for i, c := range containerEntities {
		containerDTOs[i].ID = c.ID
		containerDTOs[i].ContainerNumber = c.ContainerNumber
		containerDTOs[i].ContainerType = c.ContainerType
		containerDTOs[i].DropoffAddress = c.DropoffAddress
		containerDTOs[i].DropoffDepotID = c.DropoffDepotID
		containerDTOs[i].AvailableFrom = c.AvailableFrom
		containerDTOs[i].TruckingOrgID = c.TruckingOrgID
		containerDTOs[i].ShippingLineOrgID = c.ShippingLineOrgID
		containerDTOs[i].Status = c.Status.String()
		containerDTOs[i].ListedOnMarketplace = c.ListedOnMarketplace
		containerDTOs[i].ConditionImageURLs = c.ConditionImageURLs
		containerDTOs[i].CreatedAt = c.CreatedAt
		containerDTOs[i].UpdatedAt = c.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(containerDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
