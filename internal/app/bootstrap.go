package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"career-navigator/internal/config"
	"career-navigator/internal/delivery/http/handler"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/delivery/http/routes"
	"career-navigator/internal/news"
	"career-navigator/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
	Refresher *news.Refresher
}

// New builds the HTTP application around an existing container. Background work is not
// started; see Start.
func New(ctx context.Context, c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	hub := ws.NewHub(ws.NewDispatcher(c.Career), c.Logger)

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(ctx, f, c, hub)

	return &App{
		Fiber:     f,
		Container: c,
		Hub:       hub,
		Refresher: newRefresher(c),
	}
}

// Start runs the WebSocket hub and the news refresher until ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	ws.SetDefaultHub(a.Hub)
	go a.Hub.Run(ctx)
	if a.Refresher != nil {
		go a.Refresher.Run(ctx)
	}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := New(ctx, c)
	app.Start(ctx)

	cleanup := func() error {
		cancel()
		ws.SetDefaultHub(nil)
		return c.Close()
	}
	return app, cleanup, nil
}

func newRefresher(c *Container) *news.Refresher {
	cfg := c.Config.News
	if len(cfg.FeedURLs) == 0 {
		return nil
	}

	scraper := news.NewScraper(news.ScraperOptions{
		Selector: cfg.Selector,
		Workers:  cfg.Workers,
		Logger:   c.Logger,
	})
	r := news.NewRefresher(scraper, c.News, cfg.FeedURLs, cfg.RefreshInterval, c.Logger)
	r.OnUpdate = ws.NotifyNewsUpdated
	return r
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(ctx context.Context, app *fiber.App, c *Container, hub *ws.Hub) {
	if app == nil {
		return
	}

	checks := map[string]handler.Pinger{}
	if c.DB != nil {
		checks["postgres"] = c.DB
	}
	if c.Cache != nil && c.Cache.Available() {
		checks["redis"] = c.Cache
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.Config.Catalog.Source, checks),
		routes.V1Handlers{
			Catalog: handler.NewCatalogHandler(c.Career),
			Career:  handler.NewCareerHandler(c.Career),
			News:    handler.NewNewsHandler(c.Career),
		},
		ws.NewHandler(ctx, hub, c.Logger),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
