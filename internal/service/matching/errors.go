package matching

import "errors"

var (
	ErrInvalidOrgID     = errors.New("invalid trucking organization id")
	ErrInvalidContainer = errors.New("invalid import container")
	ErrInvalidBooking   = errors.New("invalid export booking")
	ErrMissingEstimator = errors.New("distance estimator is required")
	ErrMissingPolicy    = errors.New("scenario policy is required")
)
