package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dbhotel-backend/config"
	"dbhotel-backend/controllers"
	"dbhotel-backend/routes"
	"dbhotel-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Required API key (fatal if missing: the assistant and document scan
	// cannot work without it)
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("ERROR: GEMINI_API_KEY environment variable is not set. Cannot initialize the AI services.")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	log.Println("Database connection established, migrations and seeding applied")

	gemini := services.NewGeminiClient(os.Getenv("GEMINI_ENDPOINT"), apiKey)

	// Initialize services
	roomService := services.NewRoomService(db)
	customerService := services.NewCustomerService(db)
	bookingService := services.NewBookingService(db)
	statsService := services.NewStatsService(db)
	financeService := services.NewFinanceService(db)
	settingsService := services.NewSettingsService(db)
	assistantService := services.NewAssistantService(db, gemini)
	scanService := services.NewScanService(gemini, "scans")

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	customerController := controllers.NewCustomerController(customerService, scanService)
	bookingController := controllers.NewBookingController(bookingService, financeService)
	dashboardController := controllers.NewDashboardController(statsService)
	financeController := controllers.NewFinanceController(financeService)
	settingsController := controllers.NewSettingsController(settingsService)
	assistantController := controllers.NewAssistantController(assistantService)

	router := routes.SetupRouter(
		roomController,
		customerController,
		bookingController,
		dashboardController,
		financeController,
		settingsController,
		assistantController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
