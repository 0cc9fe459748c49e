// File: ridelink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ridelink/config"
	"ridelink/database/repository"
	"ridelink/handlers"
	"ridelink/middleware"
	"ridelink/routes"
	bookingSvc "ridelink/services/booking"
	"ridelink/services/estimation"
	searchSvc "ridelink/services/search"
	"ridelink/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	vehicleCatalog := repository.NewMemoryVehicleCatalog()
	bookingRepo := repository.NewMemoryBookingRepo()

	// services.
	estimator, err := estimation.NewGeminiEstimator(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		time.Duration(config.AppConfig.EstimationTimeoutS)*time.Second,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize estimation client: %v", err)
	}

	searchService := &searchSvc.DefaultSearchService{
		Estimator: estimator,
		Catalog:   vehicleCatalog,
		Logger:    logger,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Catalog: vehicleCatalog,
		Repo:    bookingRepo,
		Logger:  logger,
	}

	searchHandler := handlers.NewSearchHandler(searchService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Search endpoints.
		SearchVehiclesHandler: searchHandler.SearchVehicles,

		// Booking endpoints.
		CreateBookingHandler: bookingHandler.CreateBooking,
		ListBookingsHandler:  bookingHandler.ListBookings,
		CancelBookingHandler: bookingHandler.CancelBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
