package cli

import (
	"context"

	"career-navigator/internal/database"
	"career-navigator/internal/database/migration"
	"career-navigator/internal/database/seeder"
	"career-navigator/migrations"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type migrateResult struct {
	Applied int `json:"applied"`
}

type migrationStatus struct {
	Version int64  `json:"version"`
	Name    string `json:"name"`
	Applied bool   `json:"applied"`
}

type seedResult struct {
	Seeders []string `json:"seeders"`
}

func newMigrateCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending catalog schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			return root.withDB(cmd, func(ctx context.Context, db database.DB) (err error) {
				var applied int
				applied, err = migration.Runner{Source: migrations.FS}.Run(ctx, db.SQLDB())
				if err != nil {
					err = errors.Wrap(err, "migration failed")
					return err
				}
				return writeJSON(cmd.OutOrStdout(), migrateResult{Applied: applied})
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which migrations have been applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			return root.withDB(cmd, func(ctx context.Context, db database.DB) (err error) {
				var statuses []migration.Status
				statuses, err = migration.Runner{Source: migrations.FS}.Status(ctx, db.SQLDB())
				if err != nil {
					err = errors.Wrap(err, "failed to read migration status")
					return err
				}

				out := make([]migrationStatus, 0, len(statuses))
				for _, s := range statuses {
					out = append(out, migrationStatus{Version: s.Version, Name: s.Name, Applied: s.Applied})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			})
		},
	})
	return cmd
}

func newSeedCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the built-in reference catalog into the database",
		Long: `Applies pending migrations and then writes the built-in reference catalog
into the catalog_* tables. Existing rows are updated in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			return root.withDB(cmd, func(ctx context.Context, db database.DB) (err error) {
				_, err = migration.Runner{Source: migrations.FS}.Run(ctx, db.SQLDB())
				if err != nil {
					err = errors.Wrap(err, "migration failed")
					return err
				}

				seeders := seeder.Defaults()
				if err = (seeder.Runner{Seeders: seeders, Logger: root.logger(cmd)}).Run(ctx, db); err != nil {
					err = errors.Wrap(err, "seed failed")
					return err
				}

				out := seedResult{Seeders: make([]string, 0, len(seeders))}
				for _, s := range seeders {
					out.Seeders = append(out.Seeders, s.Name())
				}
				return writeJSON(cmd.OutOrStdout(), out)
			})
		},
	}
}

func (o *rootOptions) withDB(cmd *cobra.Command, fn func(ctx context.Context, db database.DB) error) (err error) {
	var db database.DB
	db, err = o.connect(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()
	return fn(ctx, db)
}
