package container_put

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
	var containerUpdateDTO dto.ContainerUpdate
	err := json.NewDecoder(r.Body).Decode(&containerUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	containerModifyEntity := entities.ImportContainerModify{
		ID: &containerUpdateDTO.ID,
	}

	if containerUpdateDTO.ContainerNumber != nil {
		containerModifyEntity.ContainerNumber = containerUpdateDTO.ContainerNumber
	}
	if containerUpdateDTO.ContainerType != nil {
		containerModifyEntity.ContainerType = containerUpdateDTO.ContainerType
	}
	if containerUpdateDTO.DropoffAddress != nil {
		containerModifyEntity.DropoffAddress = containerUpdateDTO.DropoffAddress
	}
	if containerUpdateDTO.DropoffDepotID != nil {
		containerModifyEntity.DropoffDepotID = containerUpdateDTO.DropoffDepotID
	}
	if containerUpdateDTO.AvailableFrom != nil {
		containerModifyEntity.AvailableFrom = containerUpdateDTO.AvailableFrom
	}
	if containerUpdateDTO.Status != nil {
		statusType := entities.ContainerStatusType(*containerUpdateDTO.Status)
		containerModifyEntity.Status = &statusType
	}
	if containerUpdateDTO.ListedOnMarketplace != nil {
		containerModifyEntity.ListedOnMarketplace = containerUpdateDTO.ListedOnMarketplace
	}
	if containerUpdateDTO.ConditionImageURLs != nil {
		containerModifyEntity.ConditionImageURLs = *containerUpdateDTO.ConditionImageURLs
	}

	res, err := h.service.UpdateContainer(r.Context(), containerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, container.ErrMissingRequiredFields),
			errors.Is(err, container.ErrInvalidContainerID),
			errors.Is(err, container.ErrInvalidNumber),
			errors.Is(err, container.ErrInvalidType),
			errors.Is(err, container.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, container.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, container.ErrContainerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, container.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Container{
		ID:                  res.ID,
		ContainerNumber:     res.ContainerNumber,
		ContainerType:       res.ContainerType,
		DropoffAddress:      res.DropoffAddress,
		DropoffDepotID:      res.DropoffDepotID,
		AvailableFrom:       res.AvailableFrom,
		TruckingOrgID:       res.TruckingOrgID,
		ShippingLineOrgID:   res.ShippingLineOrgID,
		Status:              res.Status.String(),
		ListedOnMarketplace: res.ListedOnMarketplace,
		ConditionImageURLs:  res.ConditionImageURLs,
		CreatedAt:           res.CreatedAt,
		UpdatedAt:           res.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
