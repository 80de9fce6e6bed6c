package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonbooking/models"
	availabilitySvc "salonbooking/services/availability"
	calendarSvc "salonbooking/services/calendar"
	modificationSvc "salonbooking/services/modification"
	"salonbooking/utils"
)

// BookingHandler serves booking creation, cancellation and modification.
type BookingHandler struct {
	Availability availabilitySvc.AvailabilityService
	Calendar     calendarSvc.CalendarService
	Modification modificationSvc.ModificationService
	Loc          *time.Location
}

func NewBookingHandler(
	availability availabilitySvc.AvailabilityService,
	cal calendarSvc.CalendarService,
	mod modificationSvc.ModificationService,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		Availability: availability,
		Calendar:     cal,
		Modification: mod,
		Loc:          loc,
	}
}

// CreateBookingHandler books a slot. The requested start must be one of the
// slots the generator would currently offer; anything else is rejected rather
// than written blindly to the calendar.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartISO)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startISO must be RFC3339"})
		return
	}

	slots, err := h.Availability.GetDaySlots(c.Request.Context(), req.Date, req.DurationMinutes, 0)
	if err != nil {
		h.writeCalendarError(c, err, "Failed to verify slot availability")
		return
	}
	if !slotOffered(slots, start) {
		c.JSON(http.StatusConflict, gin.H{"error": "Requested slot is no longer available"})
		return
	}

	summary := req.ClientName
	if req.Service != "" {
		summary = fmt.Sprintf("%s - %s", req.ClientName, req.Service)
	}
	booking := models.Booking{
		Summary:   summary,
		StartTime: start,
		EndTime:   start.Add(time.Duration(req.DurationMinutes) * time.Minute),
	}
	meta := map[string]string{
		"bookingRef":  uuid.New().String(),
		"clientPhone": req.ClientPhone,
	}

	created, err := h.Calendar.CreateBooking(c.Request.Context(), booking, meta)
	if err != nil {
		h.writeCalendarError(c, err, "Failed to create booking")
		return
	}

	logger.Info("Booking created",
		zap.String("eventID", created.EventID),
		zap.String("date", req.Date),
		zap.String("start", req.StartISO))
	c.JSON(http.StatusCreated, gin.H{"booking": created, "bookingRef": meta["bookingRef"]})
}

// GetBookingHandler returns one booking by its calendar event ID.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Calendar.GetBooking(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		h.writeCalendarError(c, err, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CheckExtensionHandler evaluates whether a booking can grow to a new duration.
// When nothing works in place, same-day alternatives from the slot generator are
// attached so the client can offer a rebooking instead of a bare refusal.
func (h *BookingHandler) CheckExtensionHandler(c *gin.Context) {
	eventID := c.Param("eventID")

	var req models.CheckExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	currentStart, err := time.Parse(time.RFC3339, req.CurrentStartISO)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currentStartISO must be RFC3339"})
		return
	}
	currentEnd, err := time.Parse(time.RFC3339, req.CurrentEndISO)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currentEndISO must be RFC3339"})
		return
	}
	if !currentEnd.After(currentStart) || req.NewDurationMinutes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking times or duration are inconsistent"})
		return
	}

	outcome, err := h.Modification.CheckExtension(c.Request.Context(), eventID, currentStart, currentEnd, req.NewDurationMinutes)
	if err != nil {
		h.writeCalendarError(c, err, "Failed to evaluate modification")
		return
	}

	resp := gin.H{"outcome": outcome}
	if outcome.Status == models.ModificationNoAvailability {
		date := currentStart.In(h.Loc).Format("2006-01-02")
		if alternatives, altErr := h.Availability.GetDaySlots(c.Request.Context(), date, req.NewDurationMinutes, 0); altErr == nil {
			resp["alternatives"] = alternatives
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ApplyExtensionHandler writes previously evaluated times to the calendar.
// There is no optimistic-concurrency check against the event: if two clients
// race on the same booking, the last write wins.
func (h *BookingHandler) ApplyExtensionHandler(c *gin.Context) {
	eventID := c.Param("eventID")

	var req models.ApplyExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	newStart, err := time.Parse(time.RFC3339, req.NewStartISO)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newStartISO must be RFC3339"})
		return
	}
	newEnd, err := time.Parse(time.RFC3339, req.NewEndISO)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newEndISO must be RFC3339"})
		return
	}
	if !newEnd.After(newStart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newEndISO must be after newStartISO"})
		return
	}

	updated, err := h.Calendar.UpdateBookingTime(c.Request.Context(), eventID, newStart, newEnd)
	if err != nil {
		h.writeCalendarError(c, err, "Failed to update booking")
		return
	}

	utils.GetLogger().Info("Booking rescheduled",
		zap.String("eventID", eventID),
		zap.String("newStart", req.NewStartISO))
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// CancelBookingHandler deletes the booking's calendar event.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	eventID := c.Param("eventID")
	if err := h.Calendar.DeleteBooking(c.Request.Context(), eventID); err != nil {
		h.writeCalendarError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "eventID": eventID})
}

func (h *BookingHandler) writeCalendarError(c *gin.Context, err error, message string) {
	if errors.Is(err, calendarSvc.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if errors.Is(err, availabilitySvc.ErrInvalidDate) || errors.Is(err, availabilitySvc.ErrInvalidDuration) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Error(message, zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": message, "message": err.Error()})
}

func slotOffered(slots []models.Slot, start time.Time) bool {
	for _, slot := range slots {
		offered, err := time.Parse(time.RFC3339, slot.StartISO)
		if err != nil {
			continue
		}
		if offered.Equal(start) {
			return true
		}
	}
	return false
}
