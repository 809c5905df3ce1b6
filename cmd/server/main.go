// Package main initializes and starts the itemdash HTTP server,
// setting up configuration, logging, the database connection, repositories,
// services, and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/avyukov/itemdash/internal/config"
	"github.com/avyukov/itemdash/internal/db"
	"github.com/avyukov/itemdash/internal/logger"
	"github.com/avyukov/itemdash/internal/models"
	"github.com/avyukov/itemdash/internal/repository"
	"github.com/avyukov/itemdash/internal/server/handler/http"
	"github.com/avyukov/itemdash/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Load a .env file if one is present, then parse flags and environment.
	_ = godotenv.Load()
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET is not set")
	}
	jwtSecret := []byte(options.JWTSecret)

	// Initialize PostgreSQL connection and the users schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer func() { _ = postgresDB.Close() }()

	// Initialize the user repository and the seeded in-memory item store.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	itemRepo := repository.NewMemoryItemRepository(models.SeedItems())

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, jwtSecret)
	itemService := service.NewItemService(itemRepo)

	// Create HTTP handlers for auth and item endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	itemHandler := &http.ItemHandler{ItemService: itemService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, itemHandler, jwtSecret, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
