// Package commands holds the cobra command tree of the games-api binary:
// serve runs the HTTP API, seed resets the store to a bundled dataset, and
// migrate only creates or updates the schema.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-games-backend/internal/config"
	"github.com/tbourn/go-games-backend/internal/repo"
	"github.com/tbourn/go-games-backend/internal/sysutil"
)

// NewRootCmd builds the command tree. version is reported by --version and
// attached to traces.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "games-api",
		Short:         "Board game reviews API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		ServeCmd(version),
		SeedCmd(),
		MigrateCmd(),
	)
	return root
}

// loadConfig reads the environment and installs the global logger.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	sysutil.ConfigureLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogPretty)
	return cfg, nil
}

// openStore connects to the configured database.
func openStore(cfg config.Config) (*repo.Store, error) {
	st, err := repo.Open(repo.Options{
		Driver:       cfg.DB.Driver,
		DSN:          cfg.DB.DSN(),
		MaxOpenConns: cfg.DB.MaxOpenConns,
		QueryTimeout: cfg.DB.QueryTimeout,
		LogLevel:     gormLogLevel(cfg.LogLevel),
		Tracing:      cfg.OTEL.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.DB.Driver, err)
	}
	return st, nil
}

// gormLogLevel maps the application log level to GORM's logger. SQL is only
// echoed at debug.
func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "info", "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}
