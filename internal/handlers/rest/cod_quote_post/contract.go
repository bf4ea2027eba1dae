//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cod_quote_post_test
package cod_quote_post

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
	QuoteByDepots(ctx context.Context, originDepotID, destinationDepotID uuid.UUID) (*entities.CodFeeQuote, error)
}
