package booking

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"containerhub/internal/entities"
	"containerhub/internal/repository"
	"containerhub/internal/service/booking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bookingColumns = `id, booking_number, required_container_type, pickup_address, pickup_depot_id,
		needed_by, trucking_org_id, shipping_line_org_id, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bookingModify entities.ExportBookingModify) (uuid.UUID, error) {
	bookingModifyDB := FromDomainModify(&bookingModify)

	query := `
		INSERT INTO export_bookings (booking_number, required_container_type, pickup_address, pickup_depot_id,
			needed_by, trucking_org_id, shipping_line_org_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, 'open'))
		RETURNING id`

	var id uuid.UUID
	err := r.querier.QueryRow(
		ctx,
		query,
		bookingModifyDB.BookingNumber,
		bookingModifyDB.RequiredContainerType,
		bookingModifyDB.PickupAddress,
		bookingModifyDB.PickupDepotID,
		bookingModifyDB.NeededBy,
		bookingModifyDB.TruckingOrgID,
		bookingModifyDB.ShippingLineOrgID,
		bookingModifyDB.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return uuid.Nil, booking.ErrConflict
		}
		return uuid.Nil, fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ExportBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM export_bookings
		WHERE id = $1`

	var bookingDB BookingDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&bookingDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository getbyid error: %w", err)
	}

	return ToDomain(&bookingDB), nil
}

func (r *Repository) GetByTruckingOrg(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ExportBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM export_bookings
		WHERE trucking_org_id = $1
		ORDER BY created_at DESC`

	return r.queryList(ctx, query, truckingOrgID)
}

// GetOpen returns every booking still waiting for a container, across all
// trucking companies. Cross-company reuse is part of the marketplace.
func (r *Repository) GetOpen(ctx context.Context) ([]entities.ExportBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM export_bookings
		WHERE status = 'open'
		ORDER BY needed_by ASC`

	return r.queryList(ctx, query)
}

func (r *Repository) Update(ctx context.Context, bookingModify entities.ExportBookingModify) (*entities.ExportBooking, error) {
	bookingModifyDB := FromDomainModify(&bookingModify)

	builder := qb.
		Update("export_bookings")

	if bookingModifyDB.BookingNumber != nil {
		builder = builder.Set("booking_number", bookingModifyDB.BookingNumber)
	}
	if bookingModifyDB.RequiredContainerType != nil {
		builder = builder.Set("required_container_type", bookingModifyDB.RequiredContainerType)
	}
	if bookingModifyDB.PickupAddress != nil {
		builder = builder.Set("pickup_address", bookingModifyDB.PickupAddress)
	}
	if bookingModifyDB.PickupDepotID != nil {
		builder = builder.Set("pickup_depot_id", bookingModifyDB.PickupDepotID)
	}
	if bookingModifyDB.NeededBy != nil {
		builder = builder.Set("needed_by", bookingModifyDB.NeededBy)
	}
	if bookingModifyDB.Status != nil {
		builder = builder.Set("status", bookingModifyDB.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": bookingModifyDB.ID}).
		Suffix("RETURNING " + bookingColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	var bookingDB BookingDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&bookingDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, booking.ErrConflict
		}

		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	return ToDomain(&bookingDB), nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.ExportBooking, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}
	defer rows.Close()

	bookingModels := make([]BookingDB, 0, 8)
	for rows.Next() {
		var bookingDB BookingDB
		if err := rows.Scan(scanTargets(&bookingDB)...); err != nil {
			return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
		}
		bookingModels = append(bookingModels, bookingDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}

	return ToDomainList(bookingModels), nil
}

func scanTargets(b *BookingDB) []interface{} {
	return []interface{}{
		&b.ID,
		&b.BookingNumber,
		&b.RequiredContainerType,
		&b.PickupAddress,
		&b.PickupDepotID,
		&b.NeededBy,
		&b.TruckingOrgID,
		&b.ShippingLineOrgID,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}
