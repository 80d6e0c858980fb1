package main

// @title Pharmacy Locator API
// @version 1.0.0
// @description Сервис поиска ближайших аптек по текстовому описанию локации на основе OpenStreetMap.
// @description
// @description Основные возможности:
// @description - Геокодирование локации (Nominatim, резервный Photon) с персистентным кешем
// @description - Поиск аптек в радиусе через Overpass: сначала с контактами, затем остальные
// @description - Ответ в JSON или в текстовом виде (format=pretty)

// @contact.name API Support
// @contact.email youremail@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:9002
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/pharmacy-locator/docs/swagger"
	"github.com/pharmacy-locator/internal/bootstrap"
	"github.com/pharmacy-locator/internal/config"
	httpDelivery "github.com/pharmacy-locator/internal/delivery/http"
	"github.com/pharmacy-locator/internal/delivery/http/handler"
	"github.com/pharmacy-locator/internal/pkg/logger"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Pharmacy Locator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// 3. Cache, providers, use cases
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	app := bootstrap.New(ctx, cfg, log)
	cancel()

	// 4. Initialize HTTP Handlers
	locatorHandler := handler.NewLocatorHandler(app.Locator, log)
	healthHandler := handler.NewHealthHandler(app.HealthChecks, log)

	// 5. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, locatorHandler, healthHandler)

	// 6. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Финальное сохранение кеша и закрытие хранилища
	if err := app.Cache.Persist(ctx); err != nil {
		log.Error("Failed to persist geocode cache", zap.Error(err))
	}
	_ = app.Close()

	log.Info("Server stopped successfully")
}
