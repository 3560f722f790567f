package main

// @title Mobike Routing API
// @version 1.0.0
// @description Сервис мультимодальной маршрутизации: строит комбинированный маршрут "первая миля на велосипеде - общественный транспорт - последняя миля на велосипеде" поверх провайдера, умеющего только одномодальные маршруты, и возвращает более быстрый из мультимодального и чисто велосипедного вариантов.

// @contact.name API Support
// @contact.email support@mobike-api.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mobike/routing-api/docs"
	"github.com/mobike/routing-api/internal/config"
	httpDelivery "github.com/mobike/routing-api/internal/delivery/http"
	"github.com/mobike/routing-api/internal/delivery/http/handler"
	"github.com/mobike/routing-api/internal/infrastructure/googleroutes"
	"github.com/mobike/routing-api/internal/pkg/logger"
	"github.com/mobike/routing-api/internal/usecase"
	"go.uber.org/zap"
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

	log.Info("Starting Mobike Routing API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Duration("provider_timeout", cfg.Provider.RequestTimeout),
	)

	// 3. Initialize routing provider client
	provider := googleroutes.NewClient(&cfg.Provider, log)
	log.Info("Routing provider client initialized")

	// 4. Initialize Use Cases
	composerUC := usecase.NewComposerUseCase(provider, log)
	plannerUC := usecase.NewPlannerUseCase(composerUC, provider, log)
	log.Info("Use cases initialized")

	// 5. Initialize HTTP Handlers
	routingHandler := handler.NewRoutingHandler(plannerUC, log)

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, routingHandler)
	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
