package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/api/http/handlers"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/api/http/middleware"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/api/http/presenter"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/security/jwt"
)

// NewApp builds the Fiber app with the shared middleware. Image and report
// uploads arrive base64-encoded in JSON, so the body limit is twice the
// upload limit.
func NewApp(log logrus.FieldLogger, maxUploadBytes int64) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "mediaid",
		BodyLimit: int(2 * maxUploadBytes),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.WithError(err).Error("unhandled error")
				return presenter.Error(c, code, "internal error")
			}
			return presenter.Error(c, code, err.Error())
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New())
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, capability *handlers.CapabilityHandler, journal *handlers.JournalHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/xray/analyze", capability.AnalyzeXRay)
	v1.Post("/emergency/detect", capability.DetectEmergency)
	v1.Post("/reports/interpret", capability.InterpretReport)
	v1.Post("/chat", capability.Chat)
	v1.Post("/symptoms/guidance", capability.SymptomGuidance)

	admin := v1.Group("/admin", authMW, jwt.RequireAdmin())
	admin.Get("/invocations", journal.List)
}
