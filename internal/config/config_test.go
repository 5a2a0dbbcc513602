package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TRIVIA_ADDR", "")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("READ_TIMEOUT", "")
	t.Setenv("WRITE_TIMEOUT", "")
	t.Setenv("SEED_CATEGORIES", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %v/%v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if !cfg.SeedCategories {
		t.Fatalf("expected categories to be seeded by default")
	}
	if cfg.SQLitePath != "trivia.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.SQLitePath)
	}
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/trivia")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if cfg.DBDriver != DriverPostgres {
		t.Fatalf("unexpected driver %q", cfg.DBDriver)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"unknown driver":   {"DB_DRIVER", "mongo"},
		"bad read timeout": {"READ_TIMEOUT", "soon"},
		"negative timeout": {"WRITE_TIMEOUT", "-1s"},
		"bad seed flag":    {"SEED_CATEGORIES", "maybe"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "memory")
			t.Setenv("READ_TIMEOUT", "")
			t.Setenv("WRITE_TIMEOUT", "")
			t.Setenv("SEED_CATEGORIES", "")
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
