package depot

import (
	"context"
	"fmt"

	"containerhub/internal/entities"
)

type Depot struct {
	repository Repository
}

func New(repository Repository) *Depot {
	return &Depot{
		repository: repository,
	}
}

// GetDepots lists depots, optionally narrowed to COD-eligible (GPG) ones.
func (s *Depot) GetDepots(ctx context.Context, gpgOnly bool) ([]entities.Depot, error) {
	var (
		depots []entities.Depot
		err    error
	)
	if gpgOnly {
		depots, err = s.repository.GetGPGEligible(ctx)
	} else {
		depots, err = s.repository.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get depots: %w", err)
	}

	return depots, nil
}
