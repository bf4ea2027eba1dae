package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ImportContainer is an emptied import container offered for street-turn reuse.
type ImportContainer struct {
	ID                  uuid.UUID
	ContainerNumber     string
	ContainerType       string
	DropoffAddress      string
	DropoffDepotID      *uuid.UUID
	AvailableFrom       time.Time
	TruckingOrgID       uuid.UUID
	ShippingLineOrgID   uuid.UUID
	Status              ContainerStatusType
	ListedOnMarketplace bool
	ConditionImageURLs  []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ContainerStatusType string

const (
	ContainerAvailable ContainerStatusType = "available"
	ContainerReserved  ContainerStatusType = "reserved"
	ContainerMatched   ContainerStatusType = "matched"
	ContainerCompleted ContainerStatusType = "completed"
	ContainerCancelled ContainerStatusType = "cancelled"
)

const DefaultContainerStatus = ContainerAvailable

func (t ContainerStatusType) String() string {
	return string(t)
}

// Validate checks the structural invariants required before the container may
// enter matching. Callers wrap the result into their own sentinel errors.
func (c ImportContainer) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required, validation.By(uuidNotNil)),
		validation.Field(&c.ContainerNumber, validation.Required),
		validation.Field(&c.ContainerType, validation.Required),
		validation.Field(&c.AvailableFrom, validation.Required),
		validation.Field(&c.TruckingOrgID, validation.By(uuidNotNil)),
		validation.Field(&c.ShippingLineOrgID, validation.By(uuidNotNil)),
	)
}

type ImportContainerModify struct {
	ID                  *uuid.UUID
	ContainerNumber     *string
	ContainerType       *string
	DropoffAddress      *string
	DropoffDepotID      *uuid.UUID
	AvailableFrom       *time.Time
	TruckingOrgID       *uuid.UUID
	ShippingLineOrgID   *uuid.UUID
	Status              *ContainerStatusType
	ListedOnMarketplace *bool
	ConditionImageURLs  []string
}

func uuidNotNil(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return validation.NewError("validation_uuid_nil", "must be a non-nil UUID")
	}
	return nil
}
