package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	availabilitySvc "salonbooking/services/availability"
	"salonbooking/utils"
)

// AvailabilityHandler serves day and slot browsing endpoints.
type AvailabilityHandler struct {
	Service availabilitySvc.AvailabilityService
}

func NewAvailabilityHandler(svc availabilitySvc.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailableDaysHandler handles GET /api/availability/days?from&to&duration.
func (h *AvailabilityHandler) GetAvailableDaysHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil || from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from, to and a numeric duration are required"})
		return
	}

	days, svcErr := h.Service.GetAvailableDays(c.Request.Context(), from, to, duration)
	if svcErr != nil {
		h.writeAvailabilityError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetDaySlotsHandler handles GET /api/availability/slots?date&duration&step.
func (h *AvailabilityHandler) GetDaySlotsHandler(c *gin.Context) {
	date := c.Query("date")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and a numeric duration are required"})
		return
	}
	step, err := strconv.Atoi(c.DefaultQuery("step", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step must be numeric"})
		return
	}

	slots, svcErr := h.Service.GetDaySlots(c.Request.Context(), date, duration, step)
	if svcErr != nil {
		h.writeAvailabilityError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

func (h *AvailabilityHandler) writeAvailabilityError(c *gin.Context, err error) {
	if errors.Is(err, availabilitySvc.ErrInvalidDate) || errors.Is(err, availabilitySvc.ErrInvalidDuration) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Error("Availability computation failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to compute availability", "message": err.Error()})
}
