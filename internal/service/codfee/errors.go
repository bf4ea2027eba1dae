package codfee

import "errors"

var (
	ErrInvalidDepotID  = errors.New("invalid depot id")
	ErrSameDepot       = errors.New("origin and destination depot are identical")
	ErrInvalidDistance = errors.New("invalid distance")
	ErrInvalidDepot    = errors.New("invalid depot")

	// ErrFeeNotFound is a normal, recoverable outcome: the matrix simply has
	// no entry in either direction for the requested pair.
	ErrFeeNotFound = errors.New("no fee schedule available for depot pair")

	ErrNoDepots = errors.New("no gpg depots to generate a fee matrix from")
)
