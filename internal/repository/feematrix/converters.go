package feematrix

import "containerhub/internal/entities"

func ToDomain(e *MatrixEntryDB) *entities.CodFeeMatrixEntry {
	if e == nil {
		return nil
	}
	return &entities.CodFeeMatrixEntry{
		OriginDepotID:      e.OriginDepotID,
		DestinationDepotID: e.DestinationDepotID,
		Fee:                e.Fee,
		DistanceKm:         e.DistanceKm,
	}
}
