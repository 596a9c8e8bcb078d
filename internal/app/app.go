package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp opens the configured store, seeds it and builds the service layer.
// The returned cleanup closes the store.
func NewApp(cfg *config.Config, migrationFS fs.FS, logOut io.Writer) (*App, func(), error) {
	logger, err := NewLogger(cfg.Logging.Level, logOut)
	if err != nil {
		return nil, nil, err
	}

	repo, err := openStore(cfg.Store.Driver, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	cleanup := func() {
		if err := repo.Close(); err != nil {
			pterm.Error.Printf("Error closing store: %v\n", err)
		}
	}

	seed := make([]store.Account, 0, len(cfg.Accounts))
	for _, acc := range cfg.Accounts {
		seed = append(seed, store.Account{ID: acc.ID, PIN: acc.PIN, Balance: acc.Balance})
	}
	if err := repo.Seed(seed); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to seed accounts: %w", err)
	}

	svc, err := service.NewService(repo, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Debug("store ready", logger.Args("driver", cfg.Store.Driver, "accounts", len(seed)))

	return &App{
		Service: svc,
		Store:   repo,
	}, cleanup, nil
}

func openStore(driver string, migrationFS fs.FS) (store.Repository, error) {
	switch driver {
	case config.DriverMemory:
		return store.NewMemoryStore(), nil
	case config.DriverSQLite:
		return store.NewSQLiteStore(migrationFS)
	default:
		return nil, fmt.Errorf("unknown store driver '%s'", driver)
	}
}

var logLevels = map[string]pterm.LogLevel{
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
	"disabled": pterm.LogLevelDisabled,
}

// NewLogger writes to out, or to stderr when out is nil, keeping log lines
// apart from the session output on stdout.
func NewLogger(level string, out io.Writer) (*pterm.Logger, error) {
	lvl, ok := logLevels[level]
	if !ok {
		return nil, fmt.Errorf("unknown log level '%s'", level)
	}

	if out == nil {
		out = os.Stderr
	}
	return pterm.DefaultLogger.WithLevel(lvl).WithWriter(out), nil
}
