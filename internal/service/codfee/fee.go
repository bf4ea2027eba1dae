package codfee

import (
	"fmt"
	"math"

	"containerhub/internal/entities"
	"containerhub/pkg/geo"
)

// Fee schedule for change-of-destination relocations, in the currency's
// smallest unit. Tier boundaries are chosen so the fee is non-decreasing in
// distance: the long-haul formula at 30 km (200000 + 30*5000 = 350000)
// meets the second flat tier exactly.
const (
	shortHaulLimitKm  = 10.0
	midHaulLimitKm    = 30.0
	shortHaulFee      = 150_000
	midHaulFee        = 350_000
	longHaulBaseFee   = 200_000
	longHaulFeePerKm  = 5_000
	feeRoundingFactor = 1_000
)

// CalculateFee maps a relocation distance to a fee. Same-depot relocations
// (distance 0) are free; long hauls are rounded half-up to the nearest 1000.
func CalculateFee(distanceKm float64) (int64, error) {
	switch {
	case math.IsNaN(distanceKm) || distanceKm < 0:
		return 0, fmt.Errorf("%w: %v", ErrInvalidDistance, distanceKm)
	case distanceKm == 0:
		return 0, nil
	case distanceKm <= shortHaulLimitKm:
		return shortHaulFee, nil
	case distanceKm <= midHaulLimitKm:
		return midHaulFee, nil
	default:
		raw := longHaulBaseFee + distanceKm*longHaulFeePerKm
		return roundToNearest(raw, feeRoundingFactor), nil
	}
}

// roundToNearest rounds half-up to a multiple of factor.
func roundToNearest(value float64, factor int64) int64 {
	f := float64(factor)
	return int64(math.Floor(value/f+0.5)) * factor
}

// GenerateMatrix builds the complete origin-by-destination fee grid for the
// given depots, both directions included, with diagonal cells forced to
// fee 0 / distance 0. Output depends only on pairwise coordinates, never on
// input ordering. Depots with invalid coordinates fail the whole batch.
func GenerateMatrix(depots []entities.Depot) ([]entities.CodFeeMatrixEntry, error) {
	for _, d := range depots {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%w: depot %s: %w", ErrInvalidDepot, d.Name, err)
		}
	}

	entries := make([]entities.CodFeeMatrixEntry, 0, len(depots)*len(depots))
	for _, origin := range depots {
		for _, destination := range depots {
			if origin.ID == destination.ID {
				entries = append(entries, entities.CodFeeMatrixEntry{
					OriginDepotID:      origin.ID,
					DestinationDepotID: destination.ID,
				})
				continue
			}

			distanceKm, err := geo.Distance(
				origin.Latitude, origin.Longitude,
				destination.Latitude, destination.Longitude,
			)
			if err != nil {
				return nil, fmt.Errorf("distance %s -> %s: %w", origin.Name, destination.Name, err)
			}

			fee, err := CalculateFee(distanceKm)
			if err != nil {
				return nil, fmt.Errorf("fee %s -> %s: %w", origin.Name, destination.Name, err)
			}

			entries = append(entries, entities.CodFeeMatrixEntry{
				OriginDepotID:      origin.ID,
				DestinationDepotID: destination.ID,
				Fee:                fee,
				DistanceKm:         distanceKm,
			})
		}
	}

	return entries, nil
}
