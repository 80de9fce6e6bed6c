package calendar

import (
	"context"
	"time"

	"salonbooking/models"
)

// CalendarService is the narrow contract against the external calendar that
// owns all bookings. Query spans wider than the provider limit must be chunked
// by the caller; no retry or backoff is performed here.
type CalendarService interface {
	QueryBusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error)
	GetBooking(ctx context.Context, eventID string) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking, meta map[string]string) (*models.Booking, error)
	UpdateBookingTime(ctx context.Context, eventID string, newStart, newEnd time.Time) (*models.Booking, error)
	DeleteBooking(ctx context.Context, eventID string) error
}
