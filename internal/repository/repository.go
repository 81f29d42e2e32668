package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Driver names a storage backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverMySQL    Driver = "mysql"
	DriverSQLite   Driver = "sqlite"
	DriverMemory   Driver = "memory"
)

// ParseDriver maps a configured driver name to a Driver.
// "postgresql" and "pg" are accepted for PostgreSQL, "sqlite3" for SQLite.
func ParseDriver(name string) (Driver, error) {
	switch name {
	case "postgres", "postgresql", "pg":
		return DriverPostgres, nil
	case "mysql", "mariadb":
		return DriverMySQL, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "memory", "mock":
		return DriverMemory, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, name)
}

// Options selects and configures the storage backend.
type Options struct {
	Driver Driver
	// DSN is the driver-native connection string.
	DSN string
	// ConnectTimeout bounds pool construction and the initial ping.
	ConnectTimeout time.Duration
}

// Store bundles the repositories of one backend.
type Store struct {
	Users    UserRepository
	Messages MessageRepository
	DB       DB

	driver  Driver
	schema  []string
	exec    func(ctx context.Context, stmt string) error
	version func(ctx context.Context) (string, error)
	close   func()
}

// Driver reports which backend serves the store.
func (s *Store) Driver() Driver {
	return s.driver
}

// EnsureSchema creates the users and messages tables if they do not exist.
// It is a no-op for the in-memory store.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.exec == nil {
		return nil
	}
	for _, stmt := range s.schema {
		if err := s.exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema (%s): %w", s.driver, err)
		}
	}
	return nil
}

// ServerVersion reports the database server's version string.
func (s *Store) ServerVersion(ctx context.Context) (string, error) {
	if s.version == nil {
		return string(s.driver), nil
	}
	return s.version(ctx)
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the configured backend. When the pool cannot be built or
// the first ping fails, Open logs a warning and returns the in-memory store
// instead; it never retries the real database afterwards.
func Open(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Driver {
	case "", DriverMemory:
		slog.Info("using in-memory store")
		return NewMemoryStore(SampleUsers()), nil
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, opts.Driver)
	}

	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}

	store, err := Connect(ctx, opts)
	if err != nil {
		slog.Warn("database unreachable, falling back to in-memory store",
			"driver", string(opts.Driver),
			"error", err,
		)
		return NewMemoryStore(SampleUsers()), nil
	}
	slog.Info("connected to database", "driver", string(opts.Driver))
	return store, nil
}

// Connect opens a SQL backend and pings it. Unlike Open it reports the
// failure instead of falling back.
func Connect(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, opts.Driver)
	}

	if opts.Driver == DriverPostgres {
		pool, err := NewPool(ctx, opts.DSN)
		if err != nil {
			return nil, err
		}
		return NewPgStore(pool), nil
	}

	d := dialectFor(opts.Driver)
	db, err := sql.Open(d.driverName, opts.DSN)
	if err != nil {
		return nil, err
	}
	if opts.Driver == DriverSQLite {
		// A single connection keeps ":memory:" databases alive and avoids
		// SQLITE_BUSY between concurrent writers.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLStore(db, opts.Driver), nil
}

// NewPool creates a PostgreSQL pool and pings it, closing the pool on failure.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
