package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobconnect-backend/internal/api/middleware"
	"jobconnect-backend/internal/api/routes"
	"jobconnect-backend/internal/auth"
	"jobconnect-backend/internal/config"
	"jobconnect-backend/internal/llm"
	"jobconnect-backend/internal/logging"
	"jobconnect-backend/internal/storage"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseGlobalLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Job Connect Hub API")

	// Data store. A missing or unreachable database degrades the
	// store-backed endpoints per call; the process still serves.
	dataStore, err := store.New(cfg)
	if err != nil {
		logger.Warn("Data store unavailable, store-backed endpoints will fail per call", map[string]interface{}{
			"error": err.Error(),
		})
		dataStore = store.Unconfigured()
	}

	// Identity provider client
	authClient := auth.NewClient(cfg)
	if !authClient.Configured("jobseeker") && !authClient.Configured("employer") {
		logger.Warn("No identity provider configured, auth endpoints will reject requests")
	}

	// LLM manager. A bad API key leaves it unhealthy but never blocks
	// startup.
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Error("Failed to start LLM manager", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Object storage for resume files; optional
	var objects storage.ObjectStore
	if spaces, err := storage.NewSpacesClient(cfg); err != nil {
		logger.Warn("Object storage unavailable, resume uploads will record placeholders", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		objects = spaces
	}

	// Redis-backed chat history; optional
	var history *utils.ChatHistoryClient
	if cfg.Redis.URL != "" {
		client := utils.NewChatHistoryClient(cfg)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx); err != nil {
			logger.Warn("Redis unreachable, chat history disabled", map[string]interface{}{
				"error": err.Error(),
			})
			client.Close()
		} else {
			history = client
			defer history.Close()
		}
		cancel()
	}

	rateLimiter := middleware.NewRateLimiter(cfg)
	defer rateLimiter.Stop()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, routes.Dependencies{
		Store:       dataStore,
		AuthClient:  authClient,
		LLM:         llmManager,
		Objects:     objects,
		History:     history,
		RateLimiter: rateLimiter,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{
				"error": err.Error(),
			})
		}

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{
		"address": address,
	})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
