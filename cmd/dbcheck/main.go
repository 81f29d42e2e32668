// Command dbcheck verifies that the configured database is reachable.
//
// It reads the same environment and config file as the server, prints the
// connection settings with the password masked, connects without the
// in-memory fallback and prints the server version. It exits 1 on failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/userdesk/backend/internal/config"
	"github.com/userdesk/backend/internal/logging"
	"github.com/userdesk/backend/internal/repository"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "database check failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	opts, err := cfg.StoreOptions()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Database settings:")
	fmt.Fprintf(out, "  driver:  %s\n", opts.Driver)
	fmt.Fprintf(out, "  dsn:     %s\n", maskDSN(opts.DSN))
	fmt.Fprintf(out, "  timeout: %s\n", opts.ConnectTimeout)

	if opts.Driver == repository.DriverMemory {
		return errors.New("no database configured (set DATABASE_URL or DB_HOST)")
	}

	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}

	store, err := repository.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer store.Close()

	version, err := store.ServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("query version: %w", err)
	}
	fmt.Fprintln(out, "Connected.")
	fmt.Fprintf(out, "Server version: %s\n", version)
	return nil
}

// maskDSN hides the password in URL-style and MySQL-style connection strings.
func maskDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		return u.Redacted()
	}
	// go-sql-driver DSNs keep the password unescaped, so it may contain '@'
	if cfg, err := mysql.ParseDSN(dsn); err == nil && cfg.Passwd != "" {
		cfg.Passwd = "xxxxx"
		return cfg.FormatDSN()
	}
	return dsn
}
