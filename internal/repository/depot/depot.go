package depot

import (
	"context"
	"fmt"

	"containerhub/internal/entities"
)

const depotColumns = `id, name, address, city, latitude, longitude, gpg_eligible`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Depot, error) {
	query := `
		SELECT ` + depotColumns + `
		FROM depots
		ORDER BY name`

	return r.queryList(ctx, query)
}

// GetGPGEligible returns only depots enrolled in the Green Port Gateway
// program. The COD fee matrix is defined over these depots alone.
func (r *Repository) GetGPGEligible(ctx context.Context) ([]entities.Depot, error) {
	query := `
		SELECT ` + depotColumns + `
		FROM depots
		WHERE gpg_eligible = TRUE
		ORDER BY name`

	return r.queryList(ctx, query)
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Depot, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected depot repository list error: %w", err)
	}
	defer rows.Close()

	depotModels := make([]DepotDB, 0, 8)
	for rows.Next() {
		var depotDB DepotDB
		err := rows.Scan(
			&depotDB.ID,
			&depotDB.Name,
			&depotDB.Address,
			&depotDB.City,
			&depotDB.Latitude,
			&depotDB.Longitude,
			&depotDB.GPGEligible,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected depot repository list error: %w", err)
		}
		depotModels = append(depotModels, depotDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected depot repository list error: %w", err)
	}

	return ToDomainList(depotModels), nil
}
