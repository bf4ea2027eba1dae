package depot

import "containerhub/internal/entities"

func ToDomain(d *DepotDB) *entities.Depot {
	if d == nil {
		return nil
	}
	return &entities.Depot{
		ID:          d.ID,
		Name:        d.Name,
		Address:     d.Address,
		City:        d.City,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		GPGEligible: d.GPGEligible,
	}
}

func ToDomainList(models []DepotDB) []entities.Depot {
	depots := make([]entities.Depot, 0, len(models))
	for i := range models {
		depots = append(depots, *ToDomain(&models[i]))
	}
	return depots
}
