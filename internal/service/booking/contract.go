//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"github.com/google/uuid"
	"containerhub/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bookingModify entities.ExportBookingModify) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ExportBooking, error)
	GetByTruckingOrg(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ExportBooking, error)
	Update(ctx context.Context, bookingModify entities.ExportBookingModify) (*entities.ExportBooking, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
