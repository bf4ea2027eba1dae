package container_handle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"containerhub/internal/entities"
	"containerhub/internal/service/containerevent"
)

type StatusHandlerFactory struct {
	containerService containerevent.ContainerService
}

func NewStatusHandlerFactory(containerService containerevent.ContainerService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		containerService: containerService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.ContainerStatusType) (containerevent.ExecuteFn, error) {
	switch status {
	case entities.ContainerAvailable:
		return f.availableHandler, nil
	case entities.ContainerCompleted:
		return f.completedHandler, nil
	case entities.ContainerCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", containerevent.ErrUndefinedStatus, status)
	}
}

// availableHandler re-lists a container that came back to the depot empty.
func (f *StatusHandlerFactory) availableHandler(ctx context.Context, containerID uuid.UUID) error {
	if err := f.setStatus(ctx, containerID, entities.ContainerAvailable); err != nil {
		return fmt.Errorf("relist container %s: %w", containerID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, containerID uuid.UUID) error {
	if err := f.setStatus(ctx, containerID, entities.ContainerCompleted); err != nil {
		return fmt.Errorf("complete container %s: %w", containerID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, containerID uuid.UUID) error {
	if err := f.setStatus(ctx, containerID, entities.ContainerCancelled); err != nil {
		return fmt.Errorf("cancel container %s: %w", containerID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) setStatus(ctx context.Context, containerID uuid.UUID, status entities.ContainerStatusType) error {
	_, err := f.containerService.UpdateContainer(ctx, entities.ImportContainerModify{
		ID:     &containerID,
		Status: &status,
	})
	return err
}
