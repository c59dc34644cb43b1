// Package persistence implements the quote store on a relational database
// through gorm. PostgreSQL is the production engine; SQLite serves local
// runs and tests.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds connection settings. Password, when set, overrides any
// password in DSN.
type Config struct {
	Driver          string
	DSN             string
	Password        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
	AutoMigrate     bool
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces the clock used to stamp WhenAdded on insert.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is the gorm-backed ports.QuoteStore.
type Store struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

var _ ports.QuoteStore = (*Store)(nil)

// Open connects to the database, applies pool settings, verifies the
// connection and, if configured, creates the quotes table.
func Open(ctx context.Context, cfg Config, logger *slog.Logger, opts ...Option) (*Store, error) {
	if cfg.DSN == "" {
		return nil, errors.New("dsn is empty")
	}

	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	store := &Store{
		logger: logger,
		now:    defaultClock,
	}
	for _, opt := range opts {
		opt(store)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(logger, cfg.SlowThreshold),
		NowFunc:        store.now,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	store.db = db
	store.sqlDB = sqlDB

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	logger.Info("database connected",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
	)

	return store, nil
}

func newDialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres:
		connConfig, err := pgx.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("parse dsn: %w", err)
		}

		if cfg.Password != "" {
			connConfig.Password = cfg.Password
		}

		return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*connConfig)}), nil
	case DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Migrate creates or updates the quotes table to match quoteRecord.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&quoteRecord{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}

// Begin opens a transaction-backed session.
func (s *Store) Begin(ctx context.Context) (ports.QuoteSession, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}

	return &session{tx: tx, now: s.now}, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}
