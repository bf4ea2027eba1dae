package container

import (
	"time"

	"github.com/google/uuid"
)

type ContainerDB struct {
	ID                  uuid.UUID
	ContainerNumber     string
	ContainerType       string
	DropoffAddress      string
	DropoffDepotID      *uuid.UUID
	AvailableFrom       time.Time
	TruckingOrgID       uuid.UUID
	ShippingLineOrgID   uuid.UUID
	Status              string
	ListedOnMarketplace bool
	ConditionImageURLs  []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ContainerModifyDB struct {
	ID                  *uuid.UUID
	ContainerNumber     *string
	ContainerType       *string
	DropoffAddress      *string
	DropoffDepotID      *uuid.UUID
	AvailableFrom       *time.Time
	TruckingOrgID       *uuid.UUID
	ShippingLineOrgID   *uuid.UUID
	Status              *string
	ListedOnMarketplace *bool
	ConditionImageURLs  []string
}
