package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"

	httpapi "toolrental-backend/internal/api/http"
	"toolrental-backend/internal/config"
	"toolrental-backend/internal/logger"
	"toolrental-backend/internal/ratelimit"
	"toolrental-backend/internal/repository/postgres"
	"toolrental-backend/internal/security"
	"toolrental-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tool Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping redis: %v", err)
	}
	logger.Info("Redis connection established", "addr", cfg.Redis.Addr)

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	loginLimiter := ratelimit.NewLoginLimiter(
		redisClient,
		cfg.Login.MaxAttempts,
		time.Duration(cfg.Login.WindowMinutes)*time.Minute,
	)

	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	dispatcher := service.NewConfirmationDispatcher(emailSvc)

	authSvc := service.NewAuthService(store.CustomerRepository, store.AdminRepository, tokenManager, loginLimiter)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.AddressRepository, store.PhoneRepository)
	adminSvc := service.NewAdminService(store.AdminRepository)
	toolSvc := service.NewToolService(store.ToolRepository, store.BrandRepository, store.CategoryRepository)
	brandSvc := service.NewBrandService(store.BrandRepository)
	categorySvc := service.NewCategoryService(store.CategoryRepository)
	addressSvc := service.NewAddressService(store.AddressRepository, store.CustomerRepository)
	phoneSvc := service.NewPhoneService(store.PhoneRepository, store.CustomerRepository)
	bookingSvc := service.NewBookingService(store.ReservationRepository, store.ToolRepository, store.CustomerRepository, dispatcher)
	dashboardSvc := service.NewDashboardService(store.DashboardRepository)

	router := httpapi.NewRouter(httpapi.RouterConfig{
		AuthSvc:      authSvc,
		CustomerSvc:  customerSvc,
		AdminSvc:     adminSvc,
		ToolSvc:      toolSvc,
		BrandSvc:     brandSvc,
		CategorySvc:  categorySvc,
		AddressSvc:   addressSvc,
		PhoneSvc:     phoneSvc,
		BookingSvc:   bookingSvc,
		DashboardSvc: dashboardSvc,
		Tokens:       tokenManager,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	// Let in-flight confirmation emails finish before exiting
	dispatcher.Wait()
	logger.Info("Server stopped. Goodbye!")
}
