package entities

import "github.com/google/uuid"

// CodFeeMatrixEntry is one precomputed cell of the depot-to-depot relocation
// fee grid. Fee is in the currency's smallest unit. Directional, but the grid
// is expected to be symmetric; same-depot cells carry fee 0 and distance 0.
type CodFeeMatrixEntry struct {
	OriginDepotID      uuid.UUID
	DestinationDepotID uuid.UUID
	Fee                int64
	DistanceKm         float64
}

// CodFeeQuote is the result of a fee lookup or an ad-hoc quote.
type CodFeeQuote struct {
	OriginDepotID      uuid.UUID
	DestinationDepotID uuid.UUID
	Fee                int64
	DistanceKm         float64
	ReverseLookup      bool
}
