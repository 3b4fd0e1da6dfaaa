// @title         MediAid AI API
// @version       1.0
// @description   Educational health assistant: chat, symptom guidance, report interpretation, X-ray explanation and emergency detection.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Operator token. Accepted forms: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	_ "github.com/aryankushwaha2206-oss/MediAid-Ai/docs"

	// internal imports
	"github.com/aryankushwaha2206-oss/MediAid-Ai/api/http"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/api/http/handlers"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/boundary"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/capability"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/config"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/health"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/health/checkers"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/journal"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/llm/provider"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/locale"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/logging"
	pgrepo "github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/repository/postgres"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/security/jwt"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The journal is optional: without DATABASE_URL calls are not recorded.
	var (
		repo   journal.Repository = journal.Nop{}
		checks []health.Checker
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("postgres connect")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.WithError(err).Fatal("postgres migrate")
		}
		repo = pgrepo.NewJournalRepository(pool)
		checks = append(checks, checkers.NewPostgresChecker(pool))
	} else {
		log.Warn("DATABASE_URL is not set: invocation journal disabled")
	}

	model, err := provider.New(ctx, cfg)
	if err != nil {
		log.WithError(err).WithField("provider", cfg.LLMProvider).Error("model provider unavailable")
		model = provider.Unavailable(cfg.LLMProvider, err)
	}
	checks = append(checks, checkers.NewModelChecker(cfg.LLMProvider, err == nil))

	uc := capability.NewService(model, model.Name(), repo, log)
	guard := boundary.New(uc, repo, log)
	locales := locale.Default()

	healthHandler := handlers.NewHealthHandler(health.NewService(checks...))
	capabilityHandler := handlers.NewCapabilityHandler(guard, locales, log, cfg.MaxUploadBytes)
	journalHandler := handlers.NewJournalHandler(repo, log)

	// JWT auth middleware for operator routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	app := http.NewApp(log, cfg.MaxUploadBytes)
	http.Register(app, healthHandler, capabilityHandler, journalHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"provider": cfg.LLMProvider,
		"model":    model.Name(),
	}).Info("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
