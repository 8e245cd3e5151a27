// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	bookingRepoPkg "slotify/database/repository/booking"
	customerRepoPkg "slotify/database/repository/customer"
	providerRepoPkg "slotify/database/repository/provider"
	serviceRepoPkg "slotify/database/repository/service"
	"slotify/handlers"
	"slotify/routes"
	"slotify/services/notification"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()

	for name, ensure := range map[string]func() error{
		"bookings":  bookingRepo.EnsureIndexes,
		"providers": providerRepo.EnsureIndexes,
		"customers": customerRepo.EnsureIndexes,
		"services":  serviceRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	notifier := notification.NewAsynqSink()
	defer notifier.Close()

	schedulingService := &scheduling.DefaultSchedulingService{
		BookingRepo:  bookingRepo,
		ProviderRepo: providerRepo,
		CustomerRepo: customerRepo,
		ServiceRepo:  serviceRepo,
		Notifier:     notifier,
		Cache:        utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}

	bookingHandler := handlers.NewBookingHandler(schedulingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(schedulingService, logger)
	providerHandler := handlers.NewProviderHandler(providerRepo, serviceRepo, logger)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(bookingHandler, availabilityHandler, providerHandler)
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitEventWorker()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
