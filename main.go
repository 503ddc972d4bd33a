package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cozy-room-booker/config"
	"cozy-room-booker/events"
	"cozy-room-booker/handlers"
	"cozy-room-booker/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting Hotel Room Reservation")
	log.Printf("Building: %d rooms on %d floors", services.TotalRooms, services.TotalFloors)

	// Connect to the event bus when configured
	var publisher events.Publisher = events.Noop{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			log.Printf("Event publishing disabled: %v", err)
		} else {
			publisher = natsPublisher
		}
	}
	defer publisher.Close()

	hotel := services.NewHotel(services.HotelOptions{
		Seed:              cfg.RandomSeed,
		DefaultRate:       cfg.DefaultOccupancyRate,
		HighlightDuration: cfg.HighlightDuration,
	})

	// Setup Gin router
	router := setupRouter(cfg, handlers.New(hotel, publisher))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func setupRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	// Set Gin to release mode in production
	if cfg.GinMode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Building routes
		api.GET("/rooms", h.GetRooms)
		api.GET("/stats", h.GetStats)

		// Booking routes
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/last", h.GetLastBooking)

		// Occupancy routes
		api.POST("/occupancy/random", h.RandomOccupancy)
		api.POST("/reset", h.ResetBookings)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
