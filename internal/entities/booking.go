package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ExportBooking is a demand for an empty container of a given type.
type ExportBooking struct {
	ID                    uuid.UUID
	BookingNumber         string
	RequiredContainerType string
	PickupAddress         string
	PickupDepotID         *uuid.UUID
	NeededBy              time.Time
	TruckingOrgID         uuid.UUID
	ShippingLineOrgID     uuid.UUID
	Status                BookingStatusType
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type BookingStatusType string

const (
	BookingOpen      BookingStatusType = "open"
	BookingMatched   BookingStatusType = "matched"
	BookingCancelled BookingStatusType = "cancelled"
)

const DefaultBookingStatus = BookingOpen

func (t BookingStatusType) String() string {
	return string(t)
}

func (b ExportBooking) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.ID, validation.Required, validation.By(uuidNotNil)),
		validation.Field(&b.BookingNumber, validation.Required),
		validation.Field(&b.RequiredContainerType, validation.Required),
		validation.Field(&b.NeededBy, validation.Required),
		validation.Field(&b.TruckingOrgID, validation.By(uuidNotNil)),
		validation.Field(&b.ShippingLineOrgID, validation.By(uuidNotNil)),
	)
}

type ExportBookingModify struct {
	ID                    *uuid.UUID
	BookingNumber         *string
	RequiredContainerType *string
	PickupAddress         *string
	PickupDepotID         *uuid.UUID
	NeededBy              *time.Time
	TruckingOrgID         *uuid.UUID
	ShippingLineOrgID     *uuid.UUID
	Status                *BookingStatusType
}
