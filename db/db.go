// Package db provides database connectivity and migration functionality for the cinelog API.
// It owns the pgx connection pool, exposes a sqlx handle over that same pool for the
// feature stores, and runs golang-migrate migrations.
// This package centralizes database concerns, similar to how a database module (e.g., TypeORMModule)
// would be configured in Nest.js, providing a connection or pool to the rest of the application.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	// Registers the postgres:// database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// The underscore import registers the file:// migration source.
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/config"
)

// Postgres error codes the stores care about.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// Psql is the statement builder every store uses; it emits $1, $2... placeholders.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewPool establishes the pgxpool connection pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URI)
	if err != nil {
		return nil, apperror.NewDatabaseError("error parsing DB_URI", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	// Bound pool creation so an unreachable database fails startup instead of hanging.
	createCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(createCtx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError("error creating pgxpool", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError("error connecting to the database", err)
	}

	return pool, nil
}

// NewSQLX wraps the pool in a database/sql handle so stores can use sqlx struct scanning.
// Closing the returned DB does not close the pool.
func NewSQLX(pool *pgxpool.Pool) *sqlx.DB {
	return sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")
}

// UniqueViolation reports whether err is a Postgres unique violation and, if so, the
// name of the violated constraint. Both pgx and lib/pq error types are recognized.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == codeUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// IsCheckViolation reports whether err is a Postgres CHECK constraint violation.
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeCheckViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == codeCheckViolation
	}
	return false
}

// migrateLogger adapts slog to migrate.Logger.
type migrateLogger struct {
	log *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...), slog.String("component", "migrate"))
}

func (l migrateLogger) Verbose() bool { return false }

func newMigrator(dsn, migrationsPath string, log *slog.Logger) (*migrate.Migrate, error) {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return nil, apperror.NewMigrationError("failed to create migrator", err)
	}
	m.Log = migrateLogger{log: log}
	return m, nil
}

func closeMigrator(m *migrate.Migrate, log *slog.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Warn("error closing migration source", slog.Any("error", srcErr))
	}
	if dbErr != nil {
		log.Warn("error closing migration database instance", slog.Any("error", dbErr))
	}
}

// RunMigrations applies any pending migrations from migrationsPath.
// Files follow golang-migrate naming: 000001_create_users.up.sql / .down.sql.
func RunMigrations(dsn, migrationsPath string, log *slog.Logger) error {
	m, err := newMigrator(dsn, migrationsPath, log)
	if err != nil {
		return err
	}
	defer closeMigrator(m, log)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError("failed to run migrations", err)
	}
	return nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(dsn, migrationsPath string, steps int, log *slog.Logger) error {
	if steps < 1 {
		return apperror.NewValidationError("steps must be at least 1", nil)
	}
	m, err := newMigrator(dsn, migrationsPath, log)
	if err != nil {
		return err
	}
	defer closeMigrator(m, log)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError("failed to roll back migrations", err)
	}
	return nil
}

// MigrationVersion returns the current schema version. A database that has never been
// migrated reports version 0.
func MigrationVersion(dsn, migrationsPath string, log *slog.Logger) (version uint, dirty bool, err error) {
	m, err := newMigrator(dsn, migrationsPath, log)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrator(m, log)

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, apperror.NewMigrationError("failed to read migration version", err)
	}
	return version, dirty, nil
}
