//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_suggestions_get_test
package matching_suggestions_get

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
	GenerateSuggestions(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.MatchSuggestion, error)
}
