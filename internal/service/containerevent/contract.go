//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=containerevent_test
package containerevent

import (
	"context"

	"github.com/google/uuid"
	"containerhub/internal/entities"
)

type ContainerService interface {
	GetContainer(ctx context.Context, id uuid.UUID) (*entities.ImportContainer, error)
	UpdateContainer(ctx context.Context, containerModify entities.ImportContainerModify) (*entities.ImportContainer, error)
}

type (
	ExecuteFn      func(ctx context.Context, containerID uuid.UUID) error
	HandlerFactory interface {
		GetHandler(status entities.ContainerStatusType) (ExecuteFn, error)
	}
)
