//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=container_post_test
package container_post

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
	CreateContainer(ctx context.Context, containerModify entities.ImportContainerModify) (uuid.UUID, error)
}
