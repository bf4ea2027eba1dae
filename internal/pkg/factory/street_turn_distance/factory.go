package street_turn_distance

import (
	"github.com/google/uuid"
	"containerhub/internal/entities"
	"containerhub/pkg/geo"
)

// fallbackDistanceKm is assumed when either side of a pairing has no depot
// reference (free-address drop-offs). Halfway along the scoring reference
// distance, so such pairs score neutrally instead of maximally.
const fallbackDistanceKm = 50.0

type DistanceFactory struct{}

func New() *DistanceFactory {
	return &DistanceFactory{}
}

// EstimateKm resolves both sides to depot coordinates and returns the
// great-circle distance. Same depot is 0 km by definition; unknown or
// invalid coordinates fall back to the neutral default.
func (f *DistanceFactory) EstimateKm(
	container entities.ImportContainer,
	booking entities.ExportBooking,
	depots map[uuid.UUID]entities.Depot,
) float64 {
	if container.DropoffDepotID == nil || booking.PickupDepotID == nil {
		return fallbackDistanceKm
	}
	if *container.DropoffDepotID == *booking.PickupDepotID {
		return 0
	}

	origin, ok := depots[*container.DropoffDepotID]
	if !ok {
		return fallbackDistanceKm
	}
	destination, ok := depots[*booking.PickupDepotID]
	if !ok {
		return fallbackDistanceKm
	}

	distanceKm, err := geo.Distance(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)
	if err != nil {
		return fallbackDistanceKm
	}
	return distanceKm
}
