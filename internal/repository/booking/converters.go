package booking

import "containerhub/internal/entities"

func ToDomain(b *BookingDB) *entities.ExportBooking {
	if b == nil {
		return nil
	}
	return &entities.ExportBooking{
		ID:                    b.ID,
		BookingNumber:         b.BookingNumber,
		RequiredContainerType: b.RequiredContainerType,
		PickupAddress:         b.PickupAddress,
		PickupDepotID:         b.PickupDepotID,
		NeededBy:              b.NeededBy,
		TruckingOrgID:         b.TruckingOrgID,
		ShippingLineOrgID:     b.ShippingLineOrgID,
		Status:                entities.BookingStatusType(b.Status),
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func ToDomainList(models []BookingDB) []entities.ExportBooking {
	bookings := make([]entities.ExportBooking, 0, len(models))
	for i := range models {
		bookings = append(bookings, *ToDomain(&models[i]))
	}
	return bookings
}

func FromDomainModify(b *entities.ExportBookingModify) *BookingModifyDB {
	if b == nil {
		return nil
	}
	bookingModifyDB := &BookingModifyDB{
		ID:                    b.ID,
		BookingNumber:         b.BookingNumber,
		RequiredContainerType: b.RequiredContainerType,
		PickupAddress:         b.PickupAddress,
		PickupDepotID:         b.PickupDepotID,
		NeededBy:              b.NeededBy,
		TruckingOrgID:         b.TruckingOrgID,
		ShippingLineOrgID:     b.ShippingLineOrgID,
	}

	if b.Status != nil {
		status := b.Status.String()
		bookingModifyDB.Status = &status
	}

	return bookingModifyDB
}
