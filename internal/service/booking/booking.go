package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"containerhub/internal/entities"
)

type Booking struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Booking {
	return &Booking{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Booking) CreateBooking(ctx context.Context, bookingModify entities.ExportBookingModify) (uuid.UUID, error) {
	if bookingModify.BookingNumber == nil ||
		bookingModify.RequiredContainerType == nil ||
		bookingModify.NeededBy == nil ||
		bookingModify.TruckingOrgID == nil ||
		bookingModify.ShippingLineOrgID == nil {
		return uuid.Nil, ErrMissingRequiredFields
	}

	if !isValidBookingNumber(*bookingModify.BookingNumber) {
		return uuid.Nil, ErrInvalidNumber
	}
	if !isValidContainerType(*bookingModify.RequiredContainerType) {
		return uuid.Nil, ErrInvalidType
	}
	if bookingModify.NeededBy.IsZero() {
		return uuid.Nil, ErrInvalidNeededBy
	}
	if bookingModify.Status != nil && !isValidStatus(bookingModify.Status.String()) {
		return uuid.Nil, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, bookingModify)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create booking: %w", err)
	}

	return id, nil
}

func (s *Booking) GetBooking(ctx context.Context, id uuid.UUID) (*entities.ExportBooking, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return booking, nil
}

func (s *Booking) GetBookings(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ExportBooking, error) {
	if truckingOrgID == uuid.Nil {
		return nil, ErrInvalidOrgID
	}

	bookings, err := s.repository.GetByTruckingOrg(ctx, truckingOrgID)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	return bookings, nil
}

func (s *Booking) UpdateBooking(ctx context.Context, bookingModify entities.ExportBookingModify) (*entities.ExportBooking, error) {
	if bookingModify.ID == nil || *bookingModify.ID == uuid.Nil {
		return nil, ErrInvalidBookingID
	}
	if bookingModify.BookingNumber == nil &&
		bookingModify.RequiredContainerType == nil &&
		bookingModify.PickupAddress == nil &&
		bookingModify.PickupDepotID == nil &&
		bookingModify.NeededBy == nil &&
		bookingModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if bookingModify.Status != nil && !isValidStatus(bookingModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	booking, err := s.repository.Update(ctx, bookingModify)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return booking, nil
}
