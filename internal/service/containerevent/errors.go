package containerevent

import "errors"

var (
	ErrUndefinedStatus   = errors.New("undefined container status")
	ErrContainerNotFound = errors.New("container not found")
)
