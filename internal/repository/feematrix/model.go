package feematrix

import "github.com/google/uuid"

type MatrixEntryDB struct {
	OriginDepotID      uuid.UUID
	DestinationDepotID uuid.UUID
	Fee                int64
	DistanceKm         float64
}
