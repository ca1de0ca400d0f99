package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"career-navigator/internal/database"
)

var errNilDB = errors.New("nil db")

// Seeder writes one group of reference rows. Running it twice must leave the same data.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

// Run executes the seeders in order and stops at the first failure.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errNilDB
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seeder] %s done duration=%s", s.Name(), time.Since(start).Truncate(time.Millisecond))
		}
	}
	return nil
}
