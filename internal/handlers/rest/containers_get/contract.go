//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=containers_get_test
package containers_get

import (
	"context"

	"github.com/google/uuid"
	"containerhub/internal/entities"
	"containerhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetContainers(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ImportContainer, error)
}
