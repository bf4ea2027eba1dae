package depot

import "github.com/google/uuid"

type DepotDB struct {
	ID          uuid.UUID
	Name        string
	Address     string
	City        string
	Latitude    float64
	Longitude   float64
	GPGEligible bool
}
