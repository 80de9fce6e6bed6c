package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"salonbooking/config"
	"salonbooking/models"
)

type googleCalendarService struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleCalendarService constructs a CalendarService backed by the Google
// Calendar API, authenticated with the configured service-account credentials.
func NewGoogleCalendarService(ctx context.Context) (CalendarService, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(config.AppConfig.GoogleCredentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}
	return &googleCalendarService{
		svc:        svc,
		calendarID: config.AppConfig.CalendarID,
	}, nil
}

// QueryBusyIntervals lists non-cancelled events overlapping [from, to). Events
// are used instead of the FreeBusy endpoint so each interval keeps its event ID,
// which the modification matcher needs to exclude the booking being changed.
func (s *googleCalendarService) QueryBusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	call := s.svc.Events.List(s.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	var busy []models.BusyInterval
	err := call.Pages(ctx, func(page *gcal.Events) error {
		for _, item := range page.Items {
			if item.Status == "cancelled" || item.Transparency == "transparent" {
				continue
			}
			start, end, err := eventTimes(item)
			if err != nil {
				return err
			}
			busy = append(busy, models.BusyInterval{
				Start:   start,
				End:     end,
				EventID: item.Id,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return busy, nil
}

func (s *googleCalendarService) GetBooking(ctx context.Context, eventID string) (*models.Booking, error) {
	event, err := s.svc.Events.Get(s.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, mapGoogleError(err)
	}
	start, end, err := eventTimes(event)
	if err != nil {
		return nil, err
	}
	return &models.Booking{
		EventID:   event.Id,
		Summary:   event.Summary,
		StartTime: start,
		EndTime:   end,
	}, nil
}

func (s *googleCalendarService) CreateBooking(ctx context.Context, booking models.Booking, meta map[string]string) (*models.Booking, error) {
	event := &gcal.Event{
		Summary: booking.Summary,
		Start:   &gcal.EventDateTime{DateTime: booking.StartTime.Format(time.RFC3339)},
		End:     &gcal.EventDateTime{DateTime: booking.EndTime.Format(time.RFC3339)},
	}
	if len(meta) > 0 {
		event.ExtendedProperties = &gcal.EventExtendedProperties{Private: meta}
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	booking.EventID = created.Id
	return &booking, nil
}

// UpdateBookingTime moves an event to new start/end instants. There is no
// compare-and-swap: if two modifications race, the last write to the calendar
// wins. Known gap inherited from the calendar API surface.
func (s *googleCalendarService) UpdateBookingTime(ctx context.Context, eventID string, newStart, newEnd time.Time) (*models.Booking, error) {
	patch := &gcal.Event{
		Start: &gcal.EventDateTime{DateTime: newStart.Format(time.RFC3339)},
		End:   &gcal.EventDateTime{DateTime: newEnd.Format(time.RFC3339)},
	}
	updated, err := s.svc.Events.Patch(s.calendarID, eventID, patch).Context(ctx).Do()
	if err != nil {
		return nil, mapGoogleError(err)
	}
	return &models.Booking{
		EventID:   updated.Id,
		Summary:   updated.Summary,
		StartTime: newStart,
		EndTime:   newEnd,
	}, nil
}

func (s *googleCalendarService) DeleteBooking(ctx context.Context, eventID string) error {
	if err := s.svc.Events.Delete(s.calendarID, eventID).Context(ctx).Do(); err != nil {
		return mapGoogleError(err)
	}
	return nil
}

// eventTimes extracts start/end instants from an event. All-day events carry a
// bare date; those are treated as covering the whole day in the event's zone.
func eventTimes(event *gcal.Event) (time.Time, time.Time, error) {
	parse := func(dt *gcal.EventDateTime) (time.Time, error) {
		if dt == nil {
			return time.Time{}, fmt.Errorf("event %s has no time", event.Id)
		}
		if dt.DateTime != "" {
			return time.Parse(time.RFC3339, dt.DateTime)
		}
		return time.Parse("2006-01-02", dt.Date)
	}

	start, err := parse(event.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parse(event.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func mapGoogleError(err error) error {
	if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == 404 {
		return ErrEventNotFound
	}
	return err
}
