//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"github.com/google/uuid"
	"containerhub/internal/entities"
)

type ContainerRepository interface {
	GetAvailableByTruckingOrg(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ImportContainer, error)
}

type BookingRepository interface {
	GetOpen(ctx context.Context) ([]entities.ExportBooking, error)
}

type DepotRepository interface {
	GetAll(ctx context.Context) ([]entities.Depot, error)
}

// RatingSource supplies partner reputation ratings (0-5) keyed by trucking
// organization id. Organizations without a rating are simply absent.
type RatingSource interface {
	GetPartnerRatings(ctx context.Context) (map[uuid.UUID]float64, error)
}

// DistanceEstimator estimates the road-relevant distance in kilometers
// between a container's drop-off and a booking's pick-up, given the depot
// snapshot of the current request.
type DistanceEstimator interface {
	EstimateKm(container entities.ImportContainer, booking entities.ExportBooking, depots map[uuid.UUID]entities.Depot) float64
}

// ScenarioPolicy classifies how a street-turn between a container and a
// booking would physically play out. Pluggable so that smarter
// location-matching can replace the depot/org-derived default.
type ScenarioPolicy interface {
	Classify(container entities.ImportContainer, booking entities.ExportBooking) Scenario
}
