package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kisanmitra/backend/internal/cache"
	"github.com/kisanmitra/backend/internal/config"
	"github.com/kisanmitra/backend/internal/delivery/http"
	applog "github.com/kisanmitra/backend/internal/platform/logger"
	"github.com/kisanmitra/backend/internal/repository/memory"
	"github.com/kisanmitra/backend/internal/service"
)

func main() {
	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := applog.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Dependency Injection: Repositories
	store := memory.NewStore()

	// Dependency Injection: Services
	dashboardSvc := service.NewDashboardService(store)
	schemeSvc := service.NewSchemeService(store)
	regionSvc := service.NewRegionService(store)

	checks := map[string]http.CheckFunc{}

	var model service.Assistant
	if cfg.ModelEnabled() {
		bridge := service.NewLLMBridge(service.LLMConfig{
			APIKey:     cfg.OpenAI.APIKey,
			BaseURL:    cfg.OpenAI.BaseURL,
			Model:      cfg.OpenAI.Model,
			MaxTokens:  cfg.OpenAI.MaxTokens,
			Timeout:    cfg.OpenAI.Timeout,
			MaxRetries: cfg.OpenAI.MaxRetries,
		}, applog.Component(zl, "llm_bridge"))
		model = bridge
		checks["model"] = bridge.Health
		zl.Info("chat model enabled", zap.String("model", cfg.OpenAI.Model))
	} else {
		zl.Info("OPENAI_API_KEY not set, chat uses the fallback responder only")
	}

	var replyCache service.ReplyCache
	var redisCache *cache.ReplyCache
	if cfg.Cache.RedisURL != "" {
		redisCache, err = cache.New(cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			zl.Warn("reply cache disabled", zap.Error(err))
			redisCache = nil
		} else {
			replyCache = redisCache
			checks["cache"] = redisCache.Ping
			zl.Info("connected to redis reply cache", zap.Duration("ttl", cfg.Cache.TTL))
		}
	}

	chatSvc := service.NewChatService(model, replyCache, applog.Component(zl, "chat"))

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Kisan e-Mitra API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + cfg.OpenAI.Timeout,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, http.Dependencies{
		Dashboard: dashboardSvc,
		Schemes:   schemeSvc,
		Regions:   regionSvc,
		Chat:      chatSvc,
		Checks:    checks,
		Logger:    applog.Component(zl, "http"),
	})

	// Graceful shutdown
	go func() {
		zl.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zl.Warn("server forced to shutdown", zap.Error(err))
	}
	chatSvc.WaitBackground()
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			zl.Warn("failed to close reply cache", zap.Error(err))
		}
	}
	zl.Info("server exited gracefully")
}
