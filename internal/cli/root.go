package cli

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"time"

	"career-navigator/internal/app"
	"career-navigator/internal/config"
	"career-navigator/internal/database"
	dbpostgres "career-navigator/internal/database/postgres"
	"career-navigator/internal/domain/catalog"
	"career-navigator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	catalogSource string
	verbose       bool
	timeout       time.Duration
}

// NewRootCommand builds the careerctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "careerctl",
		Short: "Evaluate career paths against the reference catalog",
		Long: `careerctl evaluates a skill profile against a target role, plans learning
roadmaps, and manages the Postgres copy of the reference catalog.

By default the built-in catalog is used. Pass --catalog postgres to read the
catalog from the database configured through DB_* environment variables.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.catalogSource, "catalog", config.CatalogSourceBuiltin, "Catalog source: builtin or postgres")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Minute, "Timeout for database work")

	cmd.AddCommand(
		newEvaluateCmd(opts),
		newRoadmapCmd(opts),
		newRolesCmd(opts),
		newMigrateCmd(opts),
		newSeedCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *log.Logger {
	if !o.verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
}

// careerUsecase resolves the catalog and returns a usecase without cache or live news.
func (o *rootOptions) careerUsecase(cmd *cobra.Command) (uc *usecase.Career, err error) {
	var cat *catalog.Catalog
	switch o.catalogSource {
	case config.CatalogSourceBuiltin:
		cat = catalog.MustNew(catalog.Defaults())
	case config.CatalogSourcePostgres:
		var db database.DB
		db, err = o.connect(cmd.Context())
		if err != nil {
			return uc, err
		}
		defer func() { _ = db.Close() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
		defer cancel()
		cat, err = app.LoadCatalog(ctx, db, o.logger(cmd))
		if err != nil {
			err = errors.Wrap(err, "failed to load catalog")
			return uc, err
		}
	default:
		err = errors.Errorf("unknown catalog source %q", o.catalogSource)
		return uc, err
	}

	uc = usecase.NewCareerUsecase(cat, nil, nil, 0, o.logger(cmd))
	return uc, err
}

func (o *rootOptions) connect(ctx context.Context) (db database.DB, err error) {
	var cfg config.Config
	cfg, err = config.Load()
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return db, err
	}
	if !cfg.Database.Configured() {
		err = errors.New("database is not configured; set DB_HOST, DB_NAME and DB_USER")
		return db, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	db, err = dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		err = errors.Wrap(err, "failed to connect to database")
		return db, err
	}
	return db, err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to write output")
}
