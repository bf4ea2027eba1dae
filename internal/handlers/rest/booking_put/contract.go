//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_put_test
package booking_put

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
	UpdateBooking(ctx context.Context, bookingModify entities.ExportBookingModify) (*entities.ExportBooking, error)
}
