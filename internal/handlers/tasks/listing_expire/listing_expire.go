package listing_expire

import (
	"context"
	"time"

	"containerhub/pkg/logger"
)

type Service interface {
	ExpireStaleListings(ctx context.Context) (int64, error)
}

type ListingExpire struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewListingExpire(log logger.Logger, service Service, interval time.Duration) *ListingExpire {
	return &ListingExpire{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *ListingExpire) TTL() time.Duration {
	return l.interval
}

func (l *ListingExpire) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	rowsAffected, err := l.service.ExpireStaleListings(ctxWithTimeout)

	if rowsAffected > 0 {
		l.log.With(
			logger.NewField("expired_listings", rowsAffected),
		).Info("listing expire")
	}

	return err
}

func (l *ListingExpire) Info() string {
	return "listing expire"
}
