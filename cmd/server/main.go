package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"parts-inventory-backend/internal/api/routes"
	"parts-inventory-backend/internal/config"
	"parts-inventory-backend/internal/database"
	"parts-inventory-backend/internal/logger"
	"parts-inventory-backend/internal/supplier"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "parts-inventory-backend/docs" // This is needed for swag
)

//	@title			Parts Inventory Backend API
//	@version		1.0
//	@description	Backend API for an electronics parts inventory: components and stock ledger, projects with stock allocation, supplier offer search, purchase order export and consumption.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	opts := &database.Options{}
	if cfg.IsDevelopment() {
		opts.LogLevel = gormlogger.Warn
	}
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DSN(), opts)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	// Supplier connectors fail fast on missing credentials
	connectors, err := supplier.Build(cfg)
	if err != nil {
		logrus.Fatal("Failed to configure supplier connectors: ", err)
	}
	names := make([]string, 0, len(connectors))
	for _, c := range connectors {
		names = append(names, c.Name())
	}
	logrus.WithField("connectors", names).Info("Supplier connectors configured")

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, connectors)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
