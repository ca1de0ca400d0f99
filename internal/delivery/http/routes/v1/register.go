package v1

import (
	"career-navigator/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Catalog *handler.CatalogHandler
	Career  *handler.CareerHandler
	News    *handler.NewsHandler
}

// Register mounts the catalog routes before the career routes; both live under /roles.
func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Catalog != nil {
		h.Catalog.RegisterRoutes(r)
	}
	if h.Career != nil {
		h.Career.RegisterRoutes(r)
	}
	if h.News != nil {
		h.News.RegisterRoutes(r)
	}
}
