package booking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidOrgID          = errors.New("invalid organization id")
	ErrInvalidNumber         = errors.New("invalid booking number")
	ErrInvalidType           = errors.New("invalid required container type")
	ErrInvalidStatus         = errors.New("invalid booking status")
	ErrInvalidNeededBy       = errors.New("invalid needed-by time")

	ErrBookingNotFound = errors.New("booking not found")
	ErrConflict        = errors.New("booking already exists")
)
