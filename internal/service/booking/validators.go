package booking

import (
	"strings"

	"containerhub/internal/entities"
)

func isValidBookingNumber(number string) bool {
	return strings.TrimSpace(number) != ""
}

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
	switch entities.BookingStatusType(status) {
	case entities.BookingOpen, entities.BookingMatched, entities.BookingCancelled:
		return true
	default:
		return false
	}
}
