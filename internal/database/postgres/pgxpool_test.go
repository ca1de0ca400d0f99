package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"career-navigator/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		DBHost:     " db.internal ",
		DBPort:     "5432",
		DBName:     "career",
		DBUser:     "navigator",
		DBPassword: "it's secret",
		DBSSLMode:  "disable",
	})

	for _, want := range []string{"host=db.internal", "port=5432", "dbname=career", "user=navigator", `password='it\'s secret'`, "sslmode=disable"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("expected dsn to contain %q, got %q", want, dsn)
		}
	}
}

func TestDSN_OmitsEmptyPassword(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{DBHost: "h", DBPort: "1", DBName: "n", DBUser: "u"})
	if strings.Contains(dsn, "password=") || strings.Contains(dsn, "sslmode=") {
		t.Fatalf("unexpected optional keys in %q", dsn)
	}
}

func TestNilPool(t *testing.T) {
	var p *Pool

	if err := p.Ping(context.Background()); !errors.Is(err, errNilPool) {
		t.Fatalf("expected errNilPool, got %v", err)
	}
	if err := p.QueryRow(context.Background(), "SELECT 1").Scan(); !errors.Is(err, errNilPool) {
		t.Fatalf("expected errNilPool, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected close err: %v", err)
	}
}
