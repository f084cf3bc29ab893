package main

import (
	"log/slog"
	"time"

	"github.com/wagerworks/ecosim/internal/infra/pgutils"
)

type apiConfig struct {
	Port            uint16        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        slog.Level    `env:"APP_LOG_LEVEL" envDefault:"INFO"`
	LogFormat       string        `env:"APP_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// Store is "postgres" or "memory". The memory store is for local runs
	// and loses all state on restart.
	Store string `env:"APP_STORE" envDefault:"postgres"`
	DSN   string `env:"PG_DSN" envDefault:""`

	// CatalogPath points at a yaml overlay for the balance tables; empty
	// runs on the compiled-in defaults.
	CatalogPath string `env:"APP_CATALOG_PATH" envDefault:""`

	SweepInterval time.Duration `env:"APP_SWEEP_INTERVAL" envDefault:"1m"`

	Pool pgutils.PoolConfig
}
