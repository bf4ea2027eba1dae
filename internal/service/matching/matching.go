package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"containerhub/internal/entities"
)

// Matching fetches current container/booking snapshots and runs the pure
// suggestion engine over them. Nothing here is persisted; every call
// recomputes from scratch.
type Matching struct {
	containerRepo ContainerRepository
	bookingRepo   BookingRepository
	depotRepo     DepotRepository
	ratingSource  RatingSource
	policy        ScenarioPolicy
	estimator     DistanceEstimator
	rates         SavingsRates
}

func New(
	containerRepo ContainerRepository,
	bookingRepo BookingRepository,
	depotRepo DepotRepository,
	ratingSource RatingSource,
	policy ScenarioPolicy,
	estimator DistanceEstimator,
	rates SavingsRates,
) *Matching {
	return &Matching{
		containerRepo: containerRepo,
		bookingRepo:   bookingRepo,
		depotRepo:     depotRepo,
		ratingSource:  ratingSource,
		policy:        policy,
		estimator:     estimator,
		rates:         rates,
	}
}

func (m *Matching) GenerateSuggestions(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.MatchSuggestion, error) {
	if truckingOrgID == uuid.Nil {
		return nil, ErrInvalidOrgID
	}

	containers, err := m.containerRepo.GetAvailableByTruckingOrg(ctx, truckingOrgID)
	if err != nil {
		return nil, fmt.Errorf("get available containers: %w", err)
	}
	if len(containers) == 0 {
		return []entities.MatchSuggestion{}, nil
	}

	bookings, err := m.bookingRepo.GetOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("get open bookings: %w", err)
	}

	depots, err := m.depotRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get depots: %w", err)
	}

	ratings, err := m.ratingSource.GetPartnerRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get partner ratings: %w", err)
	}

	suggestions, err := BuildSuggestions(containers, bookings, EngineInputs{
		Distance: m.estimator,
		Scenario: m.policy,
		Depots: lo.Associate(depots, func(d entities.Depot) (uuid.UUID, entities.Depot) {
			return d.ID, d
		}),
		PartnerRatings: ratings,
		Rates:          m.rates,
	})
	if err != nil {
		return nil, fmt.Errorf("build suggestions: %w", err)
	}

	return suggestions, nil
}
