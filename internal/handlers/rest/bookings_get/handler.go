package bookings_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
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
	truckingOrgID, err := uuid.Parse(r.URL.Query().Get("org"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingEntities, err := h.service.GetBookings(r.Context(), truckingOrgID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidOrgID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	bookingDTOs := make([]dto.Booking, len(bookingEntities))
	for i, b := range bookingEntities {
		bookingDTOs[i].ID = b.ID
		bookingDTOs[i].BookingNumber = b.BookingNumber
		bookingDTOs[i].RequiredContainerType = b.RequiredContainerType
		bookingDTOs[i].PickupAddress = b.PickupAddress
		bookingDTOs[i].PickupDepotID = b.PickupDepotID
		bookingDTOs[i].NeededBy = b.NeededBy
		bookingDTOs[i].TruckingOrgID = b.TruckingOrgID
		bookingDTOs[i].ShippingLineOrgID = b.ShippingLineOrgID
		bookingDTOs[i].Status = b.Status.String()
		bookingDTOs[i].CreatedAt = b.CreatedAt
		bookingDTOs[i].UpdatedAt = b.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(bookingDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
