package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonbooking/models"
	scheduleSvc "salonbooking/services/schedule"
	"salonbooking/utils"
)

// ScheduleHandler serves the owner's schedule administration endpoints.
type ScheduleHandler struct {
	Service scheduleSvc.ScheduleService
}

func NewScheduleHandler(svc scheduleSvc.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetScheduleHandler returns the whole mirror: weekly entries plus exceptions.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	weekly, err := h.Service.WeeklySchedule(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to read weekly schedule")
		return
	}
	exceptions, err := h.Service.Exceptions(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to read schedule exceptions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly": weekly, "exceptions": exceptions})
}

// UpdateWeeklyEntryHandler handles PUT /api/schedule/weekly/:day.
func (h *ScheduleHandler) UpdateWeeklyEntryHandler(c *gin.Context) {
	var entry models.ScheduleEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.UpdateWeeklyEntry(c.Request.Context(), c.Param("day"), entry); err != nil {
		if errors.Is(err, scheduleSvc.ErrUnknownWeekday) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.writeError(c, err, "Failed to update weekly entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weekly entry updated", "day": c.Param("day")})
}

// UpsertExceptionHandler handles PUT /api/schedule/exceptions/:date.
func (h *ScheduleHandler) UpsertExceptionHandler(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must look like 2006-01-02"})
		return
	}

	var entry models.ScheduleEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.UpsertException(c.Request.Context(), date, entry); err != nil {
		h.writeError(c, err, "Failed to store exception")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exception stored", "date": date})
}

// DeleteExceptionHandler handles DELETE /api/schedule/exceptions/:date.
func (h *ScheduleHandler) DeleteExceptionHandler(c *gin.Context) {
	date := c.Param("date")
	if err := h.Service.RemoveException(c.Request.Context(), date); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No exception for that date"})
			return
		}
		h.writeError(c, err, "Failed to delete exception")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exception removed", "date": date})
}

// SyncScheduleHandler triggers an immediate mirror refresh from the sheet.
func (h *ScheduleHandler) SyncScheduleHandler(c *gin.Context) {
	if err := h.Service.SyncFromSource(c.Request.Context()); err != nil {
		if errors.Is(err, scheduleSvc.ErrNoSource) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.writeError(c, err, "Failed to sync schedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule synced"})
}

func (h *ScheduleHandler) writeError(c *gin.Context, err error, message string) {
	utils.GetLogger().Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": message, "message": err.Error()})
}
