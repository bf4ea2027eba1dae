package entities

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Depot is a named physical location with coordinates. GPGEligible marks
// depots that may serve as change-of-destination drop-off points.
type Depot struct {
	ID          uuid.UUID
	Name        string
	Address     string
	City        string
	Latitude    float64
	Longitude   float64
	GPGEligible bool
}

func (d Depot) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required, validation.By(uuidNotNil)),
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&d.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	)
}
