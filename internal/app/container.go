package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"career-navigator/internal/config"
	"career-navigator/internal/database"
	"career-navigator/internal/database/migration"
	dbpostgres "career-navigator/internal/database/postgres"
	"career-navigator/internal/domain/catalog"
	"career-navigator/internal/infrastructure/cache"
	"career-navigator/internal/news"
	"career-navigator/internal/repository"
	"career-navigator/internal/usecase"
	"career-navigator/migrations"
)

var errEmptyCatalog = errors.New("reference catalog in database is empty; run careerctl seed")

type Container struct {
	Config  config.Config
	Logger  *log.Logger
	DB      database.DB
	Cache   *cache.Redis
	Catalog *catalog.Catalog
	News    *news.Store
	Career  *usecase.Career
}

// NewContainer resolves the catalog from the configured source and wires the usecase
// layer around it. The database, when used, is only read here.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db

		cat, err := LoadCatalog(ctx, db, logger)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.Catalog = cat
	default:
		c.Catalog = catalog.MustNew(catalog.Defaults())
	}

	c.Cache = cache.NewRedis(cfg.Cache, logger)
	c.News = news.NewStore(c.Catalog.News())
	c.Career = usecase.NewCareerUsecase(c.Catalog, c.News, c.Cache, cfg.Cache.TTL, logger)

	logger.Printf("[App] catalog loaded source=%s roles=%d", cfg.Catalog.Source, len(c.Catalog.RoleNames()))
	return c, nil
}

// LoadCatalog applies pending migrations and reads the reference tables into a catalog.
func LoadCatalog(ctx context.Context, db database.DB, logger *log.Logger) (*catalog.Catalog, error) {
	applied, err := migration.Runner{Source: migrations.FS}.Run(ctx, db.SQLDB())
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if applied > 0 && logger != nil {
		logger.Printf("[App] applied migrations count=%d", applied)
	}

	tables, err := repository.NewPostgresCatalogRepository(db).LoadTables(ctx)
	if err != nil {
		return nil, err
	}
	if len(tables.Roles) == 0 {
		return nil, errEmptyCatalog
	}
	return catalog.New(tables)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
