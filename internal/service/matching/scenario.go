package matching

import "containerhub/internal/entities"

// Scenario describes the physical shape of a street-turn pairing. The flags
// feed the complexity sub-score.
type Scenario struct {
	SameDepot           bool
	SameTruckingCompany bool
	SameShippingLine    bool
	RequiresCod         bool
	RequiresVAS         bool
}

// DepotScenarioPolicy derives the scenario from depot references and
// organization ids. COD and value-added-service flags stay false here; a
// richer policy can set them once real routing data exists.
type DepotScenarioPolicy struct{}

func NewDepotScenarioPolicy() *DepotScenarioPolicy {
	return &DepotScenarioPolicy{}
}

func (p *DepotScenarioPolicy) Classify(container entities.ImportContainer, booking entities.ExportBooking) Scenario {
	sameDepot := container.DropoffDepotID != nil &&
		booking.PickupDepotID != nil &&
		*container.DropoffDepotID == *booking.PickupDepotID

	return Scenario{
		SameDepot:           sameDepot,
		SameTruckingCompany: container.TruckingOrgID == booking.TruckingOrgID,
		SameShippingLine:    container.ShippingLineOrgID == booking.ShippingLineOrgID,
	}
}
