//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=container_put_test
package container_put

import (
	"context"

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
	UpdateContainer(ctx context.Context, containerModify entities.ImportContainerModify) (*entities.ImportContainer, error)
}
