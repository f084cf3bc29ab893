package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/wagerworks/ecosim/internal/api"
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/internal/engine"
	"github.com/wagerworks/ecosim/internal/infra/logging"
	"github.com/wagerworks/ecosim/internal/infra/pgutils"
	"github.com/wagerworks/ecosim/internal/notify"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	accmem "github.com/wagerworks/ecosim/internal/repos/accounts/memory"
	accpg "github.com/wagerworks/ecosim/internal/repos/accounts/postgres"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
	ledmem "github.com/wagerworks/ecosim/internal/repos/ledger/memory"
	ledpg "github.com/wagerworks/ecosim/internal/repos/ledger/postgres"
	"github.com/wagerworks/ecosim/pkg/envconf"
	"github.com/wagerworks/ecosim/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(apiConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	// --- Stores ---
	var (
		accStore accounts.Accounts
		ledStore ledger.Store
	)

	switch cfg.Store {
	case "memory":
		slog.Warn("using in-memory stores, state is not persisted")

		mem := ledmem.New()
		ledStore = mem
		accStore = accmem.New(mem)
	case "postgres":
		if cfg.DSN == "" {
			return fmt.Errorf("PG_DSN is required for the postgres store")
		}

		db, err := pgutils.OpenDB(ctx, cfg.DSN, cfg.Pool)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}

		shutdownqueue.Add(func(context.Context) error {
			slog.Info("Close database pool")
			return db.Close()
		})

		accStore = accpg.New(db)
		ledStore = ledpg.New(db)
	default:
		return fmt.Errorf("unknown store %q", cfg.Store)
	}

	// --- Engine ---
	eng := engine.New(accStore, ledStore, cat, engine.Options{
		Notifier: notify.NewLogNotifier(slog.Default()),
	})

	sweepCtx, stopSweepers := context.WithCancel(context.Background())
	eng.Velocity().StartSweeper(sweepCtx, cfg.SweepInterval)
	eng.Sessions().StartSweeper(sweepCtx, cfg.SweepInterval)

	shutdownqueue.Add(func(context.Context) error {
		stopSweepers()
		return nil
	})

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, eng)

	// Register HTTP server graceful shutdown
	shutdownqueue.Add(func(c context.Context) error {
		slog.Info("Shut down server")

		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	// Run server
	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("API started", "port", cfg.Port, "store", cfg.Store)

	// --- Wait until either context cancels or server errors out ---
	select {
	case <-ctx.Done():
		// graceful path; deferred shutdownqueue.Shutdown will run
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
