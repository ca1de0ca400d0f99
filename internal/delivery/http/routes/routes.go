package routes

import (
	"career-navigator/internal/delivery/http/handler"
	"career-navigator/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     V1Handlers
	ws     *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, v1 V1Handlers, wsHandler *ws.Handler) *Registry {
	return &Registry{health: health, v1: v1, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	r.ws.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
