package container_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"containerhub/internal/entities"
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
	var containerCreateDTO dto.ContainerCreate
	err := json.NewDecoder(r.Body).Decode(&containerCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	containerModifyEntity := entities.ImportContainerModify{
		ContainerNumber:     &containerCreateDTO.ContainerNumber,
		ContainerType:       &containerCreateDTO.ContainerType,
		DropoffAddress:      &containerCreateDTO.DropoffAddress,
		DropoffDepotID:      containerCreateDTO.DropoffDepotID,
		AvailableFrom:       &containerCreateDTO.AvailableFrom,
		TruckingOrgID:       &containerCreateDTO.TruckingOrgID,
		ShippingLineOrgID:   &containerCreateDTO.ShippingLineOrgID,
		ListedOnMarketplace: containerCreateDTO.ListedOnMarketplace,
	}
	if containerCreateDTO.ConditionImageURLs != nil {
		containerModifyEntity.ConditionImageURLs = *containerCreateDTO.ConditionImageURLs
	}

	id, err := h.service.CreateContainer(r.Context(), containerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, container.ErrMissingRequiredFields),
			errors.Is(err, container.ErrInvalidNumber),
			errors.Is(err, container.ErrInvalidType),
			errors.Is(err, container.ErrInvalidStatus),
			errors.Is(err, container.ErrInvalidAvailableFrom):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, container.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ContainerCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
