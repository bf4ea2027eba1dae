package container_status_changed

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
	ProcessContainerStatusChange(ctx context.Context, containerModify entities.ImportContainerModify) (*entities.ImportContainer, error)
}
