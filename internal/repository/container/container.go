package container

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"containerhub/internal/entities"
	"containerhub/internal/repository"
	"containerhub/internal/service/container"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const containerColumns = `id, container_number, container_type, dropoff_address, dropoff_depot_id,
		available_from, trucking_org_id, shipping_line_org_id, status, listed_on_marketplace,
		condition_image_urls, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, containerModify entities.ImportContainerModify) (uuid.UUID, error) {
	containerModifyDB := FromDomainModify(&containerModify)

	query := `
		INSERT INTO import_containers (container_number, container_type, dropoff_address, dropoff_depot_id,
			available_from, trucking_org_id, shipping_line_org_id, status, listed_on_marketplace, condition_image_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, 'available'), COALESCE($9, TRUE), $10)
		RETURNING id`

	var id uuid.UUID
	err := r.querier.QueryRow(
		ctx,
		query,
		containerModifyDB.ContainerNumber,
		containerModifyDB.ContainerType,
		containerModifyDB.DropoffAddress,
		containerModifyDB.DropoffDepotID,
		containerModifyDB.AvailableFrom,
		containerModifyDB.TruckingOrgID,
		containerModifyDB.ShippingLineOrgID,
		containerModifyDB.Status,
		containerModifyDB.ListedOnMarketplace,
		containerModifyDB.ConditionImageURLs,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return uuid.Nil, container.ErrConflict
		}
		return uuid.Nil, fmt.Errorf("unexpected container repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ImportContainer, error) {
	query := `
		SELECT ` + containerColumns + `
		FROM import_containers
		WHERE id = $1`

	var containerDB ContainerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&containerDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, container.ErrContainerNotFound
		}
		return nil, fmt.Errorf("unexpected container repository getbyid error: %w", err)
	}

	return ToDomain(&containerDB), nil
}

func (r *Repository) GetByTruckingOrg(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ImportContainer, error) {
	query := `
		SELECT ` + containerColumns + `
		FROM import_containers
		WHERE trucking_org_id = $1
		ORDER BY created_at DESC`

	return r.queryList(ctx, query, truckingOrgID)
}

// GetAvailableByTruckingOrg returns the org's marketplace-listed empties that
// are still up for a street-turn.
func (r *Repository) GetAvailableByTruckingOrg(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ImportContainer, error) {
	query := `
		SELECT ` + containerColumns + `
		FROM import_containers
		WHERE trucking_org_id = $1
		  AND status = 'available'
		  AND listed_on_marketplace = TRUE
		ORDER BY available_from ASC`

	return r.queryList(ctx, query, truckingOrgID)
}

func (r *Repository) Update(ctx context.Context, containerModify entities.ImportContainerModify) (*entities.ImportContainer, error) {
	containerModifyDB := FromDomainModify(&containerModify)

	builder := qb.
		Update("import_containers")

	if containerModifyDB.ContainerNumber != nil {
		builder = builder.Set("container_number", containerModifyDB.ContainerNumber)
	}
	if containerModifyDB.ContainerType != nil {
		builder = builder.Set("container_type", containerModifyDB.ContainerType)
	}
	if containerModifyDB.DropoffAddress != nil {
		builder = builder.Set("dropoff_address", containerModifyDB.DropoffAddress)
	}
	if containerModifyDB.DropoffDepotID != nil {
		builder = builder.Set("dropoff_depot_id", containerModifyDB.DropoffDepotID)
	}
	if containerModifyDB.AvailableFrom != nil {
		builder = builder.Set("available_from", containerModifyDB.AvailableFrom)
	}
	if containerModifyDB.Status != nil {
		builder = builder.Set("status", containerModifyDB.Status)
	}
	if containerModifyDB.ListedOnMarketplace != nil {
		builder = builder.Set("listed_on_marketplace", containerModifyDB.ListedOnMarketplace)
	}
	if containerModifyDB.ConditionImageURLs != nil {
		builder = builder.Set("condition_image_urls", containerModifyDB.ConditionImageURLs)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": containerModifyDB.ID}).
		Suffix("RETURNING " + containerColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository update error: %w", err)
	}

	var containerDB ContainerDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&containerDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, container.ErrContainerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, container.ErrConflict
		}

		return nil, fmt.Errorf("unexpected container repository update error: %w", err)
	}

	return ToDomain(&containerDB), nil
}

// listingHorizonDays bounds how long an available empty may sit on the
// marketplace past its availability date before it is delisted.
const listingHorizonDays = 14

// CancelAvailableWhereWindowPassed delists empties whose availability date is
// already behind the reuse horizon, so stale listings never reach matching.
func (r *Repository) CancelAvailableWhereWindowPassed(ctx context.Context) (int64, error) {
	query := `
		UPDATE import_containers
		SET status = 'cancelled',
		    listed_on_marketplace = FALSE,
		    updated_at = NOW()
		WHERE status = 'available'
		  AND available_from < NOW() - make_interval(days => $1)`

	result, err := r.querier.Exec(ctx, query, listingHorizonDays)
	if err != nil {
		return 0, fmt.Errorf("unexpected container repository expire listings error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.ImportContainer, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository list error: %w", err)
	}
	defer rows.Close()

	containerModels := make([]ContainerDB, 0, 8)
	for rows.Next() {
		var containerDB ContainerDB
		if err := rows.Scan(scanTargets(&containerDB)...); err != nil {
			return nil, fmt.Errorf("unexpected container repository list error: %w", err)
		}
		containerModels = append(containerModels, containerDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected container repository list error: %w", err)
	}

	return ToDomainList(containerModels), nil
}

func scanTargets(c *ContainerDB) []interface{} {
	return []interface{}{
		&c.ID,
		&c.ContainerNumber,
		&c.ContainerType,
		&c.DropoffAddress,
		&c.DropoffDepotID,
		&c.AvailableFrom,
		&c.TruckingOrgID,
		&c.ShippingLineOrgID,
		&c.Status,
		&c.ListedOnMarketplace,
		&c.ConditionImageURLs,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}
