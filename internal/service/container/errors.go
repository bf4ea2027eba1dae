package container

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidContainerID    = errors.New("invalid container id")
	ErrInvalidOrgID          = errors.New("invalid organization id")
	ErrInvalidNumber         = errors.New("invalid container number")
	ErrInvalidType           = errors.New("invalid container type")
	ErrInvalidStatus         = errors.New("invalid container status")
	ErrInvalidTransition     = errors.New("invalid container status transition")
	ErrInvalidAvailableFrom  = errors.New("invalid available-from time")

	ErrContainerNotFound = errors.New("container not found")
	ErrConflict          = errors.New("container already exists")
)
