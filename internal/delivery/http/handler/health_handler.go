package handler

import (
	"context"
	"time"

	"career-navigator/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is an optional dependency reported by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	catalogSource string
	checks        map[string]Pinger
}

func NewHealthHandler(catalogSource string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{catalogSource: catalogSource, checks: checks}
}

type healthResponse struct {
	Catalog      string            `json:"catalog"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.HandleHealth)
}

// HandleHealth reports 503 when any configured dependency fails its ping.
func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := healthResponse{Catalog: h.catalogSource, Dependencies: map[string]string{}}
	healthy := true
	for name, p := range h.checks {
		if p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			out.Dependencies[name] = "unavailable"
			healthy = false
			continue
		}
		out.Dependencies[name] = "ok"
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageDegraded, out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageHealthy, out)
}
