package container_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	containerEntity, err := h.service.GetContainer(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, container.ErrContainerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, container.ErrInvalidContainerID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	containerDTO := dto.Container{
		ID:                  containerEntity.ID,
		ContainerNumber:     containerEntity.ContainerNumber,
		ContainerType:       containerEntity.ContainerType,
		DropoffAddress:      containerEntity.DropoffAddress,
		DropoffDepotID:      containerEntity.DropoffDepotID,
		AvailableFrom:       containerEntity.AvailableFrom,
		TruckingOrgID:       containerEntity.TruckingOrgID,
		ShippingLineOrgID:   containerEntity.ShippingLineOrgID,
		Status:              containerEntity.Status.String(),
		ListedOnMarketplace: containerEntity.ListedOnMarketplace,
		ConditionImageURLs:  containerEntity.ConditionImageURLs,
		CreatedAt:           containerEntity.CreatedAt,
		UpdatedAt:           containerEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(containerDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
