package booking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"containerhub/internal/entities"
	"containerhub/internal/generated/dto"
	"containerhub/internal/service/booking"
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
	var bookingCreateDTO dto.BookingCreate
	err := json.NewDecoder(r.Body).Decode(&bookingCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingModifyEntity := entities.ExportBookingModify{
		BookingNumber:         &bookingCreateDTO.BookingNumber,
		RequiredContainerType: &bookingCreateDTO.RequiredContainerType,
		PickupAddress:         &bookingCreateDTO.PickupAddress,
		PickupDepotID:         bookingCreateDTO.PickupDepotID,
		NeededBy:              &bookingCreateDTO.NeededBy,
		TruckingOrgID:         &bookingCreateDTO.TruckingOrgID,
		ShippingLineOrgID:     &bookingCreateDTO.ShippingLineOrgID,
	}

	id, err := h.service.CreateBooking(r.Context(), bookingModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, booking.ErrInvalidNumber),
			errors.Is(err, booking.ErrInvalidType),
			errors.Is(err, booking.ErrInvalidStatus),
			errors.Is(err, booking.ErrInvalidNeededBy):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.BookingCreateResponse{
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
