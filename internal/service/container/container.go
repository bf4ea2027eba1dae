package container

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"containerhub/internal/entities"
)

type Container struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Container {
	return &Container{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Container) CreateContainer(ctx context.Context, containerModify entities.ImportContainerModify) (uuid.UUID, error) {
	if containerModify.ContainerNumber == nil ||
		containerModify.ContainerType == nil ||
		containerModify.AvailableFrom == nil ||
		containerModify.TruckingOrgID == nil ||
		containerModify.ShippingLineOrgID == nil {
		return uuid.Nil, ErrMissingRequiredFields
	}

	if !isValidContainerNumber(*containerModify.ContainerNumber) {
		return uuid.Nil, ErrInvalidNumber
	}
	if !isValidContainerType(*containerModify.ContainerType) {
		return uuid.Nil, ErrInvalidType
	}
	if containerModify.AvailableFrom.IsZero() {
		return uuid.Nil, ErrInvalidAvailableFrom
	}
	if containerModify.Status != nil && !isValidStatus(containerModify.Status.String()) {
		return uuid.Nil, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, containerModify)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create container: %w", err)
	}

	return id, nil
}

// UpdateContainer applies a partial update. Status changes are checked
// against the lifecycle inside one serializable transaction.
func (s *Container) UpdateContainer(ctx context.Context, containerModify entities.ImportContainerModify) (*entities.ImportContainer, error) {
	if containerModify.ID == nil || *containerModify.ID == uuid.Nil {
		return nil, ErrInvalidContainerID
	}
	if containerModify.ContainerNumber == nil &&
		containerModify.ContainerType == nil &&
		containerModify.DropoffAddress == nil &&
		containerModify.DropoffDepotID == nil &&
		containerModify.AvailableFrom == nil &&
		containerModify.Status == nil &&
		containerModify.ListedOnMarketplace == nil &&
		containerModify.ConditionImageURLs == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if containerModify.ContainerNumber != nil && !isValidContainerNumber(*containerModify.ContainerNumber) {
		return nil, ErrInvalidNumber
	}
	if containerModify.ContainerType != nil && !isValidContainerType(*containerModify.ContainerType) {
		return nil, ErrInvalidType
	}
	if containerModify.Status != nil && !isValidStatus(containerModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.ImportContainer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if containerModify.Status != nil {
			current, err := s.repository.GetByID(ctx, *containerModify.ID)
			if err != nil {
				return fmt.Errorf("get container for status change: %w", err)
			}
			if !isAllowedTransition(current.Status, *containerModify.Status) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, *containerModify.Status)
			}
		}

		container, err := s.repository.Update(ctx, containerModify)
		if err != nil {
			return fmt.Errorf("update container: %w", err)
		}

		updated = container
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Container) GetContainer(ctx context.Context, id uuid.UUID) (*entities.ImportContainer, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidContainerID
	}

	container, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get container: %w", err)
	}

	return container, nil
}

func (s *Container) GetContainers(ctx context.Context, truckingOrgID uuid.UUID) ([]entities.ImportContainer, error) {
	if truckingOrgID == uuid.Nil {
		return nil, ErrInvalidOrgID
	}

	containers, err := s.repository.GetByTruckingOrg(ctx, truckingOrgID)
	if err != nil {
		return nil, fmt.Errorf("get containers: %w", err)
	}

	return containers, nil
}

// ExpireStaleListings cancels available listings whose booking window has
// passed. Invoked periodically by the background worker.
func (s *Container) ExpireStaleListings(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.CancelAvailableWhereWindowPassed(ctx)
	if err != nil {
		return 0, fmt.Errorf("expire stale listings: %w", err)
	}

	return rowsAffected, nil
}
