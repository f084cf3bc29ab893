package envconf

import (
	"errors"
	"testing"
	"time"
)

type testPG struct {
	DSN      string        `env:"TEST_PG_DSN"`
	MaxConns int           `env:"TEST_PG_MAX_CONNS" envDefault:"10"`
	IdleTime time.Duration `env:"TEST_PG_IDLE" envDefault:"90s"`
}

type testConfig struct {
	Port     uint16  `env:"TEST_PORT"`
	Debug    bool    `env:"TEST_DEBUG" envDefault:"false"`
	EdgeFrac float64 `env:"TEST_EDGE" envDefault:"0.05"`
	Postgres testPG
}

func TestLoad_DefaultsAndRequired(t *testing.T) {
	t.Setenv("TEST_PORT", "8080")
	t.Setenv("TEST_PG_DSN", "postgres://localhost/eco")

	cfg := new(testConfig)

	err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("port: want 8080, got %d", cfg.Port)
	}
	if cfg.Debug {
		t.Error("debug: want default false")
	}
	if cfg.EdgeFrac != 0.05 {
		t.Errorf("edge: want 0.05, got %v", cfg.EdgeFrac)
	}
	if cfg.Postgres.MaxConns != 10 {
		t.Errorf("max conns default: want 10, got %d", cfg.Postgres.MaxConns)
	}
	if cfg.Postgres.IdleTime != 90*time.Second {
		t.Errorf("idle default: want 90s, got %v", cfg.Postgres.IdleTime)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("TEST_PORT", "8080")
	// TEST_PG_DSN deliberately unset

	err := Load(new(testConfig))
	if !errors.Is(err, ErrMissingRequired) {
		t.Fatalf("want ErrMissingRequired, got %v", err)
	}
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("TEST_PORT", "8080")
	t.Setenv("TEST_PG_DSN", "postgres://localhost/eco")
	t.Setenv("TEST_PG_MAX_CONNS", "32")

	cfg := new(testConfig)

	err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Postgres.MaxConns != 32 {
		t.Errorf("max conns: want 32, got %d", cfg.Postgres.MaxConns)
	}
}

func TestLoad_NonPointer(t *testing.T) {
	err := Load(testConfig{})
	if err == nil {
		t.Fatal("want error for non-pointer destination")
	}
}
