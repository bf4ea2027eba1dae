package codfee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"containerhub/internal/entities"
)

// CodFee quotes change-of-destination relocation fees from the persisted
// depot-to-depot matrix and regenerates that matrix from GPG depot
// coordinates.
type CodFee struct {
	matrixRepo MatrixRepository
	depotRepo  DepotRepository
	txManager  TxManager
}

func New(matrixRepo MatrixRepository, depotRepo DepotRepository, txManager TxManager) *CodFee {
	return &CodFee{
		matrixRepo: matrixRepo,
		depotRepo:  depotRepo,
		txManager:  txManager,
	}
}

// QuoteByDepots looks up the relocation fee for a depot pair. The matrix is
// expected to be symmetric but may be populated in one direction only, so a
// missing forward entry falls back to the reverse direction before the pair
// is reported as having no fee schedule.
func (s *CodFee) QuoteByDepots(ctx context.Context, originDepotID, destinationDepotID uuid.UUID) (*entities.CodFeeQuote, error) {
	if originDepotID == uuid.Nil || destinationDepotID == uuid.Nil {
		return nil, ErrInvalidDepotID
	}
	if originDepotID == destinationDepotID {
		return nil, ErrSameDepot
	}

	entry, err := s.matrixRepo.GetFee(ctx, originDepotID, destinationDepotID)
	if err == nil {
		return quoteFromEntry(originDepotID, destinationDepotID, entry, false), nil
	}
	if !errors.Is(err, ErrFeeNotFound) {
		return nil, fmt.Errorf("forward fee lookup: %w", err)
	}

	entry, err = s.matrixRepo.GetFee(ctx, destinationDepotID, originDepotID)
	if err != nil {
		if errors.Is(err, ErrFeeNotFound) {
			return nil, ErrFeeNotFound
		}
		return nil, fmt.Errorf("reverse fee lookup: %w", err)
	}

	return quoteFromEntry(originDepotID, destinationDepotID, entry, true), nil
}

// RefreshMatrix regenerates the full fee grid from the current GPG depots
// and swaps it in atomically.
func (s *CodFee) RefreshMatrix(ctx context.Context) (int, error) {
	depots, err := s.depotRepo.GetGPGEligible(ctx)
	if err != nil {
		return 0, fmt.Errorf("get gpg depots: %w", err)
	}
	if len(depots) == 0 {
		return 0, ErrNoDepots
	}

	entries, err := GenerateMatrix(depots)
	if err != nil {
		return 0, fmt.Errorf("generate fee matrix: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.matrixRepo.ReplaceAll(ctx, entries)
	})
	if err != nil {
		return 0, fmt.Errorf("persist fee matrix: %w", err)
	}

	return len(entries), nil
}

func quoteFromEntry(originDepotID, destinationDepotID uuid.UUID, entry *entities.CodFeeMatrixEntry, reverse bool) *entities.CodFeeQuote {
	return &entities.CodFeeQuote{
		OriginDepotID:      originDepotID,
		DestinationDepotID: destinationDepotID,
		Fee:                entry.Fee,
		DistanceKm:         entry.DistanceKm,
		ReverseLookup:      reverse,
	}
}
