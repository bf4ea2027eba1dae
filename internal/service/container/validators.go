package container

import (
	"strings"

	"containerhub/internal/entities"
)

func isValidContainerNumber(number string) bool {
	return strings.TrimSpace(number) != ""
}

// ISO 6346 size/type codes, e.g. 20DC, 40HC, 45HC, 20RF.
func isValidContainerType(containerType string) bool {
	containerType = strings.TrimSpace(containerType)
	if len(containerType) != 4 {
		return false
	}
	for _, char := range containerType {
		if (char < '0' || char > '9') && (char < 'A' || char > 'Z') {
			return false
		}
	}
	return true
}

func isValidStatus(status string) bool {
	switch entities.ContainerStatusType(status) {
	case entities.ContainerAvailable,
		entities.ContainerReserved,
		entities.ContainerMatched,
		entities.ContainerCompleted,
		entities.ContainerCancelled:
		return true
	default:
		return false
	}
}

// allowedTransitions encodes the container lifecycle. Completed is terminal;
// cancelled listings may be re-listed.
var allowedTransitions = map[entities.ContainerStatusType][]entities.ContainerStatusType{
	entities.ContainerAvailable: {entities.ContainerReserved, entities.ContainerMatched, entities.ContainerCancelled},
	entities.ContainerReserved:  {entities.ContainerAvailable, entities.ContainerMatched, entities.ContainerCancelled},
	entities.ContainerMatched:   {entities.ContainerCompleted, entities.ContainerCancelled},
	entities.ContainerCancelled: {entities.ContainerAvailable},
}

func isAllowedTransition(from, to entities.ContainerStatusType) bool {
	if from == to {
		return true
	}
	for _, allowed := range allowedTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}
