//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=codfee_test
package codfee

import (
	"context"

	"github.com/google/uuid"
	"containerhub/internal/entities"
)

type MatrixRepository interface {
	// GetFee returns the persisted entry for the exact (origin, destination)
	// direction, or the repository's not-found sentinel mapped to
	// ErrFeeNotFound.
	GetFee(ctx context.Context, originDepotID, destinationDepotID uuid.UUID) (*entities.CodFeeMatrixEntry, error)
	ReplaceAll(ctx context.Context, entries []entities.CodFeeMatrixEntry) error
}

type DepotRepository interface {
	GetGPGEligible(ctx context.Context) ([]entities.Depot, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
