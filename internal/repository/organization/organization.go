package organization

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetPartnerRatings returns the 0..5 marketplace rating per organization.
// Organizations without accumulated reviews carry a zero rating.
func (r *Repository) GetPartnerRatings(ctx context.Context) (map[uuid.UUID]float64, error) {
	query := `
		SELECT id, COALESCE(partner_rating, 0)
		FROM organizations`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected organization repository ratings error: %w", err)
	}
	defer rows.Close()

	ratings := make(map[uuid.UUID]float64, 8)
	for rows.Next() {
		var (
			id     uuid.UUID
			rating float64
		)
		if err := rows.Scan(&id, &rating); err != nil {
			return nil, fmt.Errorf("unexpected organization repository ratings error: %w", err)
		}
		ratings[id] = rating
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected organization repository ratings error: %w", err)
	}

	return ratings, nil
}
