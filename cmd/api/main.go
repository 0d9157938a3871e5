package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kalobot/backend/config"
	"github.com/kalobot/backend/internal/api"
	"github.com/kalobot/backend/internal/database"
	"github.com/kalobot/backend/internal/middleware"
	"github.com/kalobot/backend/internal/router"
	"github.com/kalobot/backend/internal/server"
	"github.com/kalobot/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// One shared connection for the process lifetime. Schema init failures
	// are fatal: the process must not serve store operations on a broken
	// schema.
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s backend: %v", cfg.StorageBackend, err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	var limiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient != nil {
		limiter = middleware.NewWriteRateLimiter(redisClient)
	}

	profileHandler := api.NewProfileHandler(service.NewProfileService(db))
	historyHandler := api.NewHistoryHandler(service.NewHistoryService(db))

	engine := router.SetupRouter(profileHandler, historyHandler, cfg.JWTSecret, limiter)
	srv := server.NewServer(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
