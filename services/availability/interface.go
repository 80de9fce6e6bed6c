package availability

import (
	"context"

	"salonbooking/models"
)

// AvailabilityService computes bookable days and slots for the salon.
type AvailabilityService interface {
	GetAvailableDays(ctx context.Context, fromDate, toDate string, durationMin int) ([]models.DayAvailability, error)
	GetDaySlots(ctx context.Context, date string, durationMin, stepMin int) ([]models.Slot, error)
}
