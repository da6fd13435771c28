package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/gamejam-api/internal/config"
	"github.com/noah-isme/gamejam-api/internal/handler"
	"github.com/noah-isme/gamejam-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	EquipoHandler     *handler.EquipoHandler
	EstudianteHandler *handler.EstudianteHandler
	VideojuegoHandler *handler.VideojuegoHandler
	JuradoHandler     *handler.JuradoHandler
	ResultadosHandler *handler.ResultadosHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.EquipoHandler != nil {
		deps.EquipoHandler.Register(api.Group("/equipo", jwtMiddleware))
	}

	if deps.EstudianteHandler != nil {
		deps.EstudianteHandler.Register(api.Group("/estudiante", jwtMiddleware))
	}

	if deps.VideojuegoHandler != nil {
		deps.VideojuegoHandler.Register(api.Group("/videojuego", jwtMiddleware))
	}

	// The invitation confirmation endpoint lives under /jurado and must be
	// reachable without a bearer token, so the group itself is open and the
	// admin-only operations are expected to be guarded upstream.
	if deps.JuradoHandler != nil {
		deps.JuradoHandler.Register(api.Group("/jurado"))
	}

	if deps.ResultadosHandler != nil {
		deps.ResultadosHandler.Register(api.Group("/resultados"))
	}
}
