// File: salonbooking/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonbooking/config"
	"salonbooking/cron"
	"salonbooking/database"
	scheduleRepo "salonbooking/database/repository/schedule"
	"salonbooking/handlers"
	"salonbooking/middleware"
	"salonbooking/routes"
	availabilitySvc "salonbooking/services/availability"
	calendarSvc "salonbooking/services/calendar"
	modificationSvc "salonbooking/services/modification"
	scheduleSvc "salonbooking/services/schedule"
	"salonbooking/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	loc := config.BusinessLocation()

	ctx := context.Background()
	calendarService, err := calendarSvc.NewGoogleCalendarService(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	var sheetSource scheduleSvc.ScheduleSource
	if config.AppConfig.ScheduleSheetID != "" {
		src, err := scheduleSvc.NewSheetsScheduleSource(ctx)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize sheets client: %v", err)
		}
		sheetSource = src
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()

	// services.
	scheduleService := &scheduleSvc.DefaultScheduleService{
		Repo:   schedRepo,
		Source: sheetSource,
		Cache:  utils.GetCacheClient(),
		TTL:    config.ScheduleCacheTTL(),
	}
	availabilityService := &availabilitySvc.DefaultAvailabilityService{
		Schedule:        scheduleService,
		Calendar:        calendarService,
		Loc:             loc,
		StepMinutes:     config.AppConfig.SlotStepMinutes,
		QueryWindowDays: config.AppConfig.CalendarQueryWindowDays,
	}
	modificationService := &modificationSvc.DefaultModificationService{
		Schedule: scheduleService,
		Calendar: calendarService,
		Loc:      loc,
	}

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(availabilityService, calendarService, modificationService, loc)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	routes.RegisterAvailabilityRoutes(router, availabilityHandler)
	routes.RegisterBookingRoutes(router, bookingHandler)
	routes.RegisterScheduleRoutes(router, scheduleHandler)
	routes.RegisterHealthRoute(router)

	// Background schedule sync from the sheet, plus external-service health.
	if sheetSource != nil {
		cron.InitScheduleSyncWorker(scheduleService)
	}
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
