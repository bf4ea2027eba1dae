package containerevent

import (
	"context"
	"errors"
	"fmt"

	"containerhub/internal/entities"
)

// Service applies container lifecycle events coming from the depot/TMS
// stream. Events are verified against the local store before any handler
// runs, so a stale or unknown container id never mutates state.
type Service struct {
	containerService ContainerService
	statusFactory    HandlerFactory
}

func New(containerService ContainerService, statusFactory HandlerFactory) *Service {
	return &Service{
		containerService: containerService,
		statusFactory:    statusFactory,
	}
}

func (s *Service) ProcessContainerStatusChange(ctx context.Context, containerModify entities.ImportContainerModify) (*entities.ImportContainer, error) {
	if containerModify.ID == nil || containerModify.Status == nil {
		return nil, fmt.Errorf("container id and status are required")
	}

	container, err := s.containerService.GetContainer(ctx, *containerModify.ID)
	if err != nil {
		return nil, fmt.Errorf("verify container: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(*containerModify.Status)
	if err != nil {
		// events with statuses we don't act on are skipped, not failed
		if errors.Is(err, ErrUndefinedStatus) {
			return container, nil
		}
		return container, err
	}

	if err := executeFn(ctx, container.ID); err != nil {
		return nil, err
	}

	return container, nil
}
