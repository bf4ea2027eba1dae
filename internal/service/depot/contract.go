//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=depot_test
package depot

import (
	"context"

	"containerhub/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Depot, error)
	GetGPGEligible(ctx context.Context) ([]entities.Depot, error)
}
