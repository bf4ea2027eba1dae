package feematrix_refresh

import (
	"context"
	"errors"
	"time"

	"containerhub/internal/service/codfee"
	"containerhub/pkg/logger"
)

type Service interface {
	RefreshMatrix(ctx context.Context) (int, error)
}

type FeeMatrixRefresh struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewFeeMatrixRefresh(log logger.Logger, service Service, interval time.Duration) *FeeMatrixRefresh {
	return &FeeMatrixRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (f *FeeMatrixRefresh) TTL() time.Duration {
	return f.interval
}

func (f *FeeMatrixRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, f.interval)
	defer cancel()

	entries, err := f.service.RefreshMatrix(ctxWithTimeout)
	if err != nil {
		// no eligible depots yet is a normal state for a fresh install
		if errors.Is(err, codfee.ErrNoDepots) {
			f.log.Warn("fee matrix refresh skipped: no eligible depots")
			return nil
		}
		return err
	}

	f.log.With(
		logger.NewField("entries", entries),
	).Info("fee matrix refreshed")

	return nil
}

func (f *FeeMatrixRefresh) Info() string {
	return "fee matrix refresh"
}
