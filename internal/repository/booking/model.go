package booking

import (
	"time"

	"github.com/google/uuid"
)

type BookingDB struct {
	ID                    uuid.UUID
	BookingNumber         string
	RequiredContainerType string
	PickupAddress         string
	PickupDepotID         *uuid.UUID
	NeededBy              time.Time
	TruckingOrgID         uuid.UUID
	ShippingLineOrgID     uuid.UUID
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type BookingModifyDB struct {
	ID                    *uuid.UUID
	BookingNumber         *string
	RequiredContainerType *string
	PickupAddress         *string
	PickupDepotID         *uuid.UUID
	NeededBy              *time.Time
	TruckingOrgID         *uuid.UUID
	ShippingLineOrgID     *uuid.UUID
	Status                *string
}
