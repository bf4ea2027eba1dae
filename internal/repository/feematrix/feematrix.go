package feematrix

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"containerhub/internal/entities"
	"containerhub/internal/service/codfee"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetFee looks up the exact directed pair. A miss maps to ErrFeeNotFound so
// the quote service can fall back to the reverse direction.
func (r *Repository) GetFee(ctx context.Context, originDepotID, destinationDepotID uuid.UUID) (*entities.CodFeeMatrixEntry, error) {
	query := `
		SELECT origin_depot_id, destination_depot_id, fee, distance_km
		FROM cod_fee_matrix
		WHERE origin_depot_id = $1 AND destination_depot_id = $2`

	var entryDB MatrixEntryDB
	err := r.querier.QueryRow(ctx, query, originDepotID, destinationDepotID).Scan(
		&entryDB.OriginDepotID,
		&entryDB.DestinationDepotID,
		&entryDB.Fee,
		&entryDB.DistanceKm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, codfee.ErrFeeNotFound
		}
		return nil, fmt.Errorf("unexpected feematrix repository getfee error: %w", err)
	}

	return ToDomain(&entryDB), nil
}

// ReplaceAll swaps the whole matrix for a freshly generated one. Runs inside
// the caller's transaction so readers never observe a half-built matrix.
func (r *Repository) ReplaceAll(ctx context.Context, entries []entities.CodFeeMatrixEntry) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM cod_fee_matrix`); err != nil {
		return fmt.Errorf("unexpected feematrix repository clear error: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	builder := qb.
		Insert("cod_fee_matrix").
		Columns("origin_depot_id", "destination_depot_id", "fee", "distance_km")

	for _, entry := range entries {
		builder = builder.Values(entry.OriginDepotID, entry.DestinationDepotID, entry.Fee, entry.DistanceKm)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected feematrix repository insert error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected feematrix repository insert error: %w", err)
	}

	return nil
}
