package container_status_changed

import "github.com/google/uuid"

// statusChangedEvent mirrors the JSON payload published by the depot/TMS
// integration on container.status.changed.
type statusChangedEvent struct {
	ContainerID uuid.UUID `json:"container_id"`
	Status      string    `json:"status"`
}
