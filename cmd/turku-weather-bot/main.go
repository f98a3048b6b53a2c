package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/Darguon/Turku-Weather-Discord-Bot/internal/api/http"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/bot"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/config"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/forecast"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/publish"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/scheduler"
	"github.com/Darguon/Turku-Weather-Discord-Bot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Forecast store: one Open-Meteo call per fetch, rate limited to stay
	// inside the free-tier budget.
	var store forecast.Fetcher = forecast.NewClient(
		httpClient, cfg.Latitude, cfg.Longitude, cfg.Timezone, cfg.ForecastDays, cfg.PastDays)
	store = forecast.NewRateLimitedFetcher(store, 1.0, 3)

	// Navigation sessions and the orchestrating service.
	arena := session.NewArena(cfg.SessionTimeout)
	service := bot.NewService(store, arena, loc)

	// Daily publish delivery: Discord webhook when configured.
	deliver := scheduler.PublishFunc(publish.LogOnly)
	if cfg.WebhookURL != "" {
		deliver = publish.NewWebhook(httpClient, cfg.WebhookURL).Publish
	}

	sched := scheduler.New(service, arena, deliver, cfg.PublishHour, loc)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "turku-weather-bot",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "turku-weather-bot",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
