package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "barbershop/docs"

	"barbershop/internal/config"
	"barbershop/internal/db"
	"barbershop/internal/email"
	"barbershop/internal/logger"
	"barbershop/internal/server"
	"barbershop/internal/staff"

	"github.com/redis/go-redis/v9"
)

// @title Barbershop API
// @version 1.0
// @description Booking backend for a barbershop: services, opening hours, slot availability and appointments.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting barbershop API")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	emailService := email.New(
		rdb,
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
	)
	logger.Info("Email service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emailService.Start(ctx)

	staffService := staff.NewService(staff.NewRepository(database), cfg.JWTSecret)
	if err := staffService.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatalf("Failed to seed admin account: %v", err)
	}

	srv := server.New(database, rdb, cfg, emailService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
