package container

import "containerhub/internal/entities"

func ToDomain(c *ContainerDB) *entities.ImportContainer {
	if c == nil {
		return nil
	}
	return &entities.ImportContainer{
		ID:                  c.ID,
		ContainerNumber:     c.ContainerNumber,
		ContainerType:       c.ContainerType,
		DropoffAddress:      c.DropoffAddress,
		DropoffDepotID:      c.DropoffDepotID,
		AvailableFrom:       c.AvailableFrom,
		TruckingOrgID:       c.TruckingOrgID,
		ShippingLineOrgID:   c.ShippingLineOrgID,
		Status:              entities.ContainerStatusType(c.Status),
		ListedOnMarketplace: c.ListedOnMarketplace,
		ConditionImageURLs:  c.ConditionImageURLs,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func ToDomainList(models []ContainerDB) []entities.ImportContainer {
	containers := make([]entities.ImportContainer, 0, len(models))
	for i := range models {
		containers = append(containers, *ToDomain(&models[i]))
	}
	return containers
}

func FromDomainModify(c *entities.ImportContainerModify) *ContainerModifyDB {
	if c == nil {
		return nil
	}
	containerModifyDB := &ContainerModifyDB{
		ID:                  c.ID,
		ContainerNumber:     c.ContainerNumber,
		ContainerType:       c.ContainerType,
		DropoffAddress:      c.DropoffAddress,
		DropoffDepotID:      c.DropoffDepotID,
		AvailableFrom:       c.AvailableFrom,
		TruckingOrgID:       c.TruckingOrgID,
		ShippingLineOrgID:   c.ShippingLineOrgID,
		ListedOnMarketplace: c.ListedOnMarketplace,
		ConditionImageURLs:  c.ConditionImageURLs,
	}

	if c.Status != nil {
		status := c.Status.String()
		containerModifyDB.Status = &status
	}

	return containerModifyDB
}
