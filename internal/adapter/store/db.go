// Package store provides database/sql access shared by the repositories:
// connection setup, dialect differences, the context transaction pattern,
// migrations and driver error mapping.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "github.com/mattn/go-sqlite3"    // registers "sqlite3"

	"github.com/heartmarshall/myenglish-lexicon/internal/config"
)

// DB is an open connection pool together with its SQL dialect.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open opens a connection pool configured from DatabaseConfig, applies pool
// settings and pings the database for fail-fast validation.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	if dialect == DialectSQLite {
		// One long-lived connection: a single writer avoids SQLITE_BUSY, and
		// in-memory databases live only as long as their connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{DB: db, Dialect: dialect}, nil
}

// OpenSource opens a read-side store from a driver name and DSN, with the
// pool settings of the defaults.
func OpenSource(ctx context.Context, driver, dsn string) (*DB, error) {
	return Open(ctx, config.DatabaseConfig{
		Driver:       driver,
		DSN:          dsn,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	})
}
