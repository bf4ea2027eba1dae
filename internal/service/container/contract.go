//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=container_test
package container

import (
	"context"

	"github.com/google/uuid"
	"containerhub/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, containerModify entities.ImportContainerModify) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ImportContainer, error)
	GetByTruckingOrg(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ImportContainer, error)
	Update(ctx context.Context, containerModify entities.ImportContainerModify) (*entities.ImportContainer, error)
	CancelAvailableWhereWindowPassed(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
