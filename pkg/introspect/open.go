// Package introspect reads table and column metadata from PostgreSQL, MySQL and SQLite catalogs.
package introspect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"

	"github.com/marshallshelly/domino/pkg/schema"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

// Drivers lists the supported driver names.
var Drivers = []string{DriverPostgres, DriverMySQL, DriverSQLite}

// ErrUnknownDriver is returned for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown database driver")

// Options tunes driver-specific introspection.
type Options struct {
	// Schema is the PostgreSQL schema to read. Defaults to "public".
	Schema string
}

// Connection is an open schema source that must be closed.
type Connection struct {
	schema.Source
	close func() error
}

// Close releases the underlying database handle.
func (c *Connection) Close() error {
	if c.close == nil {
		return nil
	}
	return c.close()
}

// Open connects to a database and returns a schema source for it.
// An empty driver is detected from the DSN.
func Open(ctx context.Context, driver, dsn string, opts Options) (*Connection, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	if driver == "" {
		driver = DetectDriver(dsn)
	}

	switch NormalizeDriver(driver) {
	case DriverPostgres:
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &Connection{
			Source: NewPostgres(pool, opts.Schema),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql DSN: %w", err)
		}
		if cfg.DBName == "" {
			return nil, fmt.Errorf("mysql DSN must name a database")
		}
		connector, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create mysql connector: %w", err)
		}
		db := sql.OpenDB(connector)
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &Connection{Source: NewMySQL(db, cfg.DBName), close: db.Close}, nil

	case DriverSQLite:
		db, err := sql.Open(DriverSQLite, strings.TrimPrefix(dsn, "sqlite3://"))
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &Connection{Source: NewSQLite(db), close: db.Close}, nil

	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownDriver, driver, strings.Join(Drivers, ", "))
	}
}

// NormalizeDriver maps driver aliases to their canonical names.
func NormalizeDriver(driver string) string {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "pgx":
		return DriverPostgres
	case "mysql", "tidb":
		return DriverMySQL
	case "sqlite3", "sqlite":
		return DriverSQLite
	default:
		return driver
	}
}

// DetectDriver guesses the driver from a connection string.
func DetectDriver(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(lower, "file:"), strings.HasPrefix(lower, "sqlite3://"),
		strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"),
		lower == ":memory:":
		return DriverSQLite
	case strings.Contains(lower, "@tcp("), strings.Contains(lower, "@unix("):
		return DriverMySQL
	default:
		return ""
	}
}
