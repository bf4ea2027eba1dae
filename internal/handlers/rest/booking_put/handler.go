package booking_put

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
	var bookingUpdateDTO dto.BookingUpdate
	err := json.NewDecoder(r.Body).Decode(&bookingUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingModifyEntity := entities.ExportBookingModify{
		ID: &bookingUpdateDTO.ID,
	}

	if bookingUpdateDTO.BookingNumber != nil {
		bookingModifyEntity.BookingNumber = bookingUpdateDTO.BookingNumber
	}
	if bookingUpdateDTO.RequiredContainerType != nil {
		bookingModifyEntity.RequiredContainerType = bookingUpdateDTO.RequiredContainerType
	}
	if bookingUpdateDTO.PickupAddress != nil {
		bookingModifyEntity.PickupAddress = bookingUpdateDTO.PickupAddress
	}
	if bookingUpdateDTO.PickupDepotID != nil {
		bookingModifyEntity.PickupDepotID = bookingUpdateDTO.PickupDepotID
	}
	if bookingUpdateDTO.NeededBy != nil {
		bookingModifyEntity.NeededBy = bookingUpdateDTO.NeededBy
	}
	if bookingUpdateDTO.Status != nil {
		statusType := entities.BookingStatusType(*bookingUpdateDTO.Status)
		bookingModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateBooking(r.Context(), bookingModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, booking.ErrInvalidBookingID),
			errors.Is(err, booking.ErrInvalidNumber),
			errors.Is(err, booking.ErrInvalidType),
			errors.Is(err, booking.ErrInvalidStatus),
			errors.Is(err, booking.ErrInvalidNeededBy):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Booking{
		ID:                    res.ID,
		BookingNumber:         res.BookingNumber,
		RequiredContainerType: res.RequiredContainerType,
		PickupAddress:         res.PickupAddress,
		PickupDepotID:         res.PickupDepotID,
		NeededBy:              res.NeededBy,
		TruckingOrgID:         res.TruckingOrgID,
		ShippingLineOrgID:     res.ShippingLineOrgID,
		Status:                res.Status.String(),
		CreatedAt:             res.CreatedAt,
		UpdatedAt:             res.UpdatedAt,
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
