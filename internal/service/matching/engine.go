package matching

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"containerhub/internal/entities"
)

const (
	maxDistanceScore    = 40.0
	referenceDistanceKm = 100.0

	maxTimeScore         = 20.0
	referenceWindowHours = 72.0

	maxComplexityScore = 15.0

	qualityDocumented = 15.0
	qualityBaseline   = 10.0
	maxPartnerScore   = 10.0
	ratingScale       = 5.0

	acceptThreshold = 50.0
)

// SavingsRates holds the per-match savings estimates attached to accepted
// pairs. Injected from config so the placeholder magnitudes stay replaceable.
type SavingsRates struct {
	CostPerMatch  decimal.Decimal
	CO2KgPerMatch decimal.Decimal
}

// EngineInputs bundles the pure collaborators of BuildSuggestions. Partner
// ratings are keyed by trucking organization id, on a 0-5 scale.
type EngineInputs struct {
	Distance       DistanceEstimator
	Scenario       ScenarioPolicy
	Depots         map[uuid.UUID]entities.Depot
	PartnerRatings map[uuid.UUID]float64
	Rates          SavingsRates
}

// BuildSuggestions pairs available import containers with open export
// bookings and returns ranked suggestions. Pure: no I/O, inputs are
// snapshots already filtered to available/open status by the caller.
//
// Pipeline: hard compatibility filter, four weighted sub-scores, a 50-point
// acceptance threshold, grouping per container, ranking by total score inside
// a group and by aggregate cost saving across groups. Containers without a
// single accepted candidate are omitted entirely.
func BuildSuggestions(
	containers []entities.ImportContainer,
	bookings []entities.ExportBooking,
	in EngineInputs,
) ([]entities.MatchSuggestion, error) {
	if in.Distance == nil {
		return nil, ErrMissingEstimator
	}
	if in.Scenario == nil {
		return nil, ErrMissingPolicy
	}

	for _, c := range containers {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidContainer, c.ContainerNumber, err)
		}
	}
	for _, b := range bookings {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidBooking, b.BookingNumber, err)
		}
	}

	suggestions := make([]entities.MatchSuggestion, 0, len(containers))
	for _, container := range containers {
		candidates := scoreCandidates(container, bookings, in)
		if len(candidates) == 0 {
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score.Total > candidates[j].Score.Total
		})

		suggestion := entities.MatchSuggestion{
			Container:  container,
			Candidates: candidates,
		}
		for _, cand := range candidates {
			suggestion.TotalEstimatedCostSaving = suggestion.TotalEstimatedCostSaving.Add(cand.EstimatedCostSaving)
			suggestion.TotalEstimatedCO2SavingKg = suggestion.TotalEstimatedCO2SavingKg.Add(cand.EstimatedCO2SavingKg)
		}
		suggestions = append(suggestions, suggestion)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].TotalEstimatedCostSaving.GreaterThan(suggestions[j].TotalEstimatedCostSaving)
	})

	return suggestions, nil
}

func scoreCandidates(
	container entities.ImportContainer,
	bookings []entities.ExportBooking,
	in EngineInputs,
) []entities.ScoredBooking {
	var candidates []entities.ScoredBooking
	for _, booking := range bookings {
		if !isCompatible(container, booking) {
			continue
		}

		scenario := in.Scenario.Classify(container, booking)
		score := scorePair(container, booking, scenario, in)
		if score.Total < acceptThreshold {
			continue
		}

		candidates = append(candidates, entities.ScoredBooking{
			Booking:              booking,
			Score:                score,
			EstimatedCostSaving:  in.Rates.CostPerMatch,
			EstimatedCO2SavingKg: in.Rates.CO2KgPerMatch,
		})
	}
	return candidates
}

// isCompatible applies the hard filters: exact container type match, same
// shipping line, and availability strictly before the booking deadline.
func isCompatible(container entities.ImportContainer, booking entities.ExportBooking) bool {
	if container.ContainerType != booking.RequiredContainerType {
		return false
	}
	if container.ShippingLineOrgID != booking.ShippingLineOrgID {
		return false
	}
	return container.AvailableFrom.Before(booking.NeededBy)
}

func scorePair(
	container entities.ImportContainer,
	booking entities.ExportBooking,
	scenario Scenario,
	in EngineInputs,
) entities.MatchingScore {
	distance := distanceScore(in.Distance.EstimateKm(container, booking, in.Depots))
	timeScr := timeScore(container, booking)
	complexity := complexityScore(scenario)
	quality, partner := qualityScore(container, booking, scenario, in.PartnerRatings)

	return entities.MatchingScore{
		Total:      distance + timeScr + complexity + quality,
		Distance:   distance,
		Time:       timeScr,
		Complexity: complexity,
		Quality:    quality,
		Partner:    partner,
	}
}

// distanceScore: 40 points at zero distance, 0 at the 100 km reference,
// linear in between.
func distanceScore(distanceKm float64) float64 {
	return maxDistanceScore * (1 - clip01(distanceKm/referenceDistanceKm))
}

// timeScore: tighter turnarounds score higher. The waiting gap between
// availability and deadline is normalized against a 72h window.
func timeScore(container entities.ImportContainer, booking entities.ExportBooking) float64 {
	gapHours := booking.NeededBy.Sub(container.AvailableFrom).Hours()
	if gapHours < 0 {
		gapHours = 0
	}
	return maxTimeScore * (1 - clip01(gapHours/referenceWindowHours))
}

func complexityScore(scenario Scenario) float64 {
	score := 0.0
	switch {
	case scenario.SameTruckingCompany && scenario.SameDepot:
		score += 15
	case scenario.SameTruckingCompany:
		score += 12
	case scenario.SameShippingLine:
		score += 8
	default:
		score += 2
	}

	if scenario.RequiresCod {
		score += 5
	}
	if scenario.RequiresVAS {
		score += 5
	}

	if score > maxComplexityScore {
		score = maxComplexityScore
	}
	return score
}

// qualityScore rewards documented container condition and, for cross-company
// pairings, the partner's reputation. The partner component is returned
// separately for transparency to the caller.
func qualityScore(
	container entities.ImportContainer,
	booking entities.ExportBooking,
	scenario Scenario,
	ratings map[uuid.UUID]float64,
) (quality, partner float64) {
	if len(container.ConditionImageURLs) > 0 {
		quality = qualityDocumented
	} else {
		quality = qualityBaseline
	}

	if !scenario.SameTruckingCompany {
		if rating, ok := ratings[booking.TruckingOrgID]; ok {
			partner = clip01(rating/ratingScale) * maxPartnerScore
		}
	}

	return quality + partner, partner
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
