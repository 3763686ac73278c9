// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping for SQLite (pure
// Go driver) and Postgres, the Store lifecycle handle, and schema migrations.
package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-games-backend/internal/domain"
)

// Supported values for Options.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnknownDriver is returned by Open for a driver name it cannot serve.
var ErrUnknownDriver = errors.New("unknown database driver")

// Options selects and tunes the database behind a Store.
type Options struct {
	Driver       string        // sqlite|postgres
	DSN          string        // file path for sqlite, URL/keyword DSN for postgres
	MaxOpenConns int           // <= 0 keeps the driver default of 10
	QueryTimeout time.Duration // per-call deadline applied by WithTimeout; 0 disables
	LogLevel     logger.LogLevel
	Tracing      bool // install the OpenTelemetry GORM plugin
}

// Store is the lifecycle-scoped handle to the relational store. It is created
// once at startup, passed explicitly to every service, and released with
// Close at teardown.
type Store struct {
	DB           *gorm.DB
	queryTimeout time.Duration
}

// Open connects to the configured database, tunes the pool and, when asked,
// installs query tracing. It does not migrate; call AutoMigrate for that.
func Open(opts Options) (*Store, error) {
	var (
		db  *gorm.DB
		err error
	)
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(opts.LogLevel)}
	if opts.LogLevel == 0 {
		gcfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case DriverSQLite, "":
		db, err = openSQLite(opts.DSN, gcfg)
	case DriverPostgres:
		db, err = openPostgres(opts.DSN, gcfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, fmt.Errorf("install gorm tracing: %w", err)
		}
	}
	if opts.MaxOpenConns > 0 {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
			sqlDB.SetMaxIdleConns(opts.MaxOpenConns)
		}
	}
	return &Store{DB: db, queryTimeout: opts.QueryTimeout}, nil
}

// openSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func openSQLite(path string, gcfg *gorm.Config) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gcfg)
	if err != nil {
		return nil, err
	}

	tunePool(db)
	return db, nil
}

// sqlitePragmas are applied on every pooled connection, not just the first.
var sqlitePragmas = []string{
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

func sqliteDSN(path string) string {
	var b strings.Builder
	b.WriteString(path)
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	for _, p := range sqlitePragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

// openPostgres connects to Postgres using a URL or keyword/value DSN.
func openPostgres(dsn string, gcfg *gorm.Config) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres DSN must not be empty")
	}
	if gcfg == nil {
		gcfg = &gorm.Config{}
	}
	db, err := gorm.Open(postgres.Open(dsn), gcfg)
	if err != nil {
		return nil, err
	}
	tunePool(db)
	return db, nil
}

func tunePool(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
}

// WithTimeout derives a context bounded by the store's query timeout. The
// returned cancel func must always be called.
func (s *Store) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s == nil || s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases pooled connections. It is safe to call on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates the schema in foreign-key order.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Category{},
		&domain.User{},
		&domain.Review{},
		&domain.Comment{},
	)
}
