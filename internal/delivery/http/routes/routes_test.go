package routes

import (
	"net/http/httptest"
	"testing"
	"time"

	"career-navigator/internal/delivery/http/handler"
	"career-navigator/internal/domain/catalog"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func TestRegistry_MountsRoutes(t *testing.T) {
	uc := usecase.NewCareerUsecase(catalog.MustNew(catalog.Defaults()), nil, nil, time.Minute, nil)

	app := fiber.New()
	NewRegistry(
		handler.NewHealthHandler("builtin", nil),
		V1Handlers{
			Catalog: handler.NewCatalogHandler(uc),
			Career:  handler.NewCareerHandler(uc),
			News:    handler.NewNewsHandler(uc),
		},
		nil,
	).Register(app)

	cases := []struct {
		path string
		want int
	}{
		{path: "/health", want: fiber.StatusOK},
		{path: "/api/v1/roles", want: fiber.StatusOK},
		{path: "/api/v1/roles/Data%20Engineer/projection", want: fiber.StatusOK},
		{path: "/api/v1/news", want: fiber.StatusOK},
		{path: "/api/v2/roles", want: fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	r.Register(fiber.New())
	NewRegistry(nil, V1Handlers{}, nil).Register(nil)
}
