package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mesa-app/mesa/internal/api"
	"github.com/mesa-app/mesa/internal/config"
	"github.com/mesa-app/mesa/internal/database"
	"github.com/mesa-app/mesa/internal/database/repository"
	"github.com/mesa-app/mesa/internal/database/service"
	internalgrpc "github.com/mesa-app/mesa/internal/grpc"
	"github.com/mesa-app/mesa/internal/handler"
	"github.com/mesa-app/mesa/internal/logger"
	"github.com/mesa-app/mesa/internal/middleware"
	"github.com/mesa-app/mesa/internal/session"
	"github.com/mesa-app/mesa/internal/views"
	"github.com/mesa-app/mesa/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting Mesa...",
		"environment", cfg.AppEnv,
		"database_driver", cfg.DatabaseDriver,
	)

	if cfg.SecretKey == "" {
		appLogger.Error("❌ SECRET_KEY must be set")
		os.Exit(1)
	}

	// 3. Connect to Database
	db, err := database.ConnectDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// 4. Schema
	if err := database.EnsureSchema(ctx, db, cfg.DatabaseDriver, cfg.AutoMigrate, appLogger); err != nil {
		appLogger.Error("❌ Database schema is not ready", "error", err)
		os.Exit(1)
	}

	// 5. Background workers
	pool := worker.NewPool(appLogger)

	// 6. Session store: Redis, or process memory when Redis is unreachable
	var (
		sessionStore database.SessionStore
		loginLimiter middleware.LoginLimiter
	)

	redisClient, err := database.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, keeping sessions in memory", "error", err)
		memoryStore := database.NewMemoryStore()
		pool.Every("session-sweep", sweepInterval, func(context.Context) {
			if n := memoryStore.Sweep(); n > 0 {
				appLogger.Debug("🧹 [Session] Expired sessions removed", "count", n)
			}
		})
		sessionStore = memoryStore
	} else {
		sessionStore = redisClient
	}
	defer sessionStore.Close()

	// 7. Login throttling
	if cfg.LoginMaxFailed > 0 && redisClient != nil {
		loginLimiter = middleware.NewLoginLimiter(redisClient.Client(), cfg.LoginMaxFailed, cfg.LoginWindow(), appLogger)
	} else {
		loginLimiter = middleware.NewNoOpLoginLimiter(appLogger)
	}

	// 8. Repositories & Services
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, loginLimiter, appLogger)

	// 9. Handlers, templates & router
	templates, err := views.Load()
	if err != nil {
		appLogger.Error("❌ Failed to parse templates", "error", err)
		os.Exit(1)
	}

	metrics := middleware.NewMetrics()
	sessions := session.NewManager(sessionStore, cfg, appLogger)
	authHandler := handler.NewAuthHandler(authService, sessions, metrics, appLogger)
	healthHandler := handler.NewHealthHandler(db, appLogger)

	r := api.SetupRouter(authHandler, healthHandler, sessions, metrics, templates, appLogger)

	// 10. Start gRPC health server
	var healthServer *internalgrpc.HealthServer
	if cfg.ApiGrpcPort != "" {
		grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.ApiGrpcPort))
		if err != nil {
			appLogger.Error("❌ Failed to listen for gRPC", "error", err)
			os.Exit(1)
		}

		healthServer = internalgrpc.NewHealthServer(appLogger)
		pool.Submit(func(context.Context) {
			if err := healthServer.Serve(grpcListener); err != nil {
				appLogger.Error("❌ gRPC Server failed", "error", err)
			}
		})
	}

	// 11. Start HTTP Server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ApiServicePort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	if healthServer != nil {
		healthServer.SetServing(true)
	}

	select {
	case <-ctx.Done():
		appLogger.Info("🛑 [Go] Shutdown signal received")
	case err := <-serverErr:
		appLogger.Error("❌ HTTP Server failed", "error", err)
	}

	// 12. Graceful shutdown
	if healthServer != nil {
		healthServer.SetServing(false)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("❌ HTTP Server shutdown failed", "error", err)
	}

	if healthServer != nil {
		healthServer.Stop()
	}
	pool.Shutdown(shutdownTimeout)

	appLogger.Info("👋 [Go] Server stopped")
}
