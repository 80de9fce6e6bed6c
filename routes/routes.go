package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbooking/handlers"
	"salonbooking/utils"
)

// RegisterAvailabilityRoutes registers day/slot browsing endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/days", h.GetAvailableDaysHandler)
		api.GET("/slots", h.GetDaySlotsHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", h.CreateBookingHandler)
		api.GET("/:eventID", h.GetBookingHandler)
		api.POST("/:eventID/check-extension", h.CheckExtensionHandler)
		api.POST("/:eventID/apply-extension", h.ApplyExtensionHandler)
		api.DELETE("/:eventID", h.CancelBookingHandler)
	}
}

// RegisterScheduleRoutes registers the owner's schedule administration endpoints.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/schedule")
	{
		api.GET("", h.GetScheduleHandler)
		api.PUT("/weekly/:day", h.UpdateWeeklyEntryHandler)
		api.PUT("/exceptions/:date", h.UpsertExceptionHandler)
		api.DELETE("/exceptions/:date", h.DeleteExceptionHandler)
		api.POST("/sync", h.SyncScheduleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
