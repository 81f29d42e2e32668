package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/userdesk/backend/internal/repository"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string         `yaml:"port"`
	DatabaseURL string         `yaml:"database_url"`
	Database    DatabaseConfig `yaml:"database"`
	// StaticDir overrides the embedded frontend bundle when set.
	StaticDir   string `yaml:"static_dir"`
	FrontendURL string `yaml:"frontend_url"`
	LogLevel    string `yaml:"log_level"`
	// ContactRateLimit is the number of contact submissions allowed per
	// client per minute. Zero disables the limit.
	ContactRateLimit int `yaml:"contact_rate_limit"`
}

// DatabaseConfig holds the discrete DB_* settings used when DATABASE_URL is empty.
type DatabaseConfig struct {
	Driver         string        `yaml:"driver"`
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	User           string        `yaml:"user"`
	Password       string        `yaml:"password"`
	Name           string        `yaml:"name"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// Load builds the configuration from defaults, the optional YAML file at
// path and then the process environment, in increasing precedence.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:             "3000",
		FrontendURL:      "*",
		LogLevel:         "INFO",
		ContactRateLimit: 10,
		Database: DatabaseConfig{
			ConnectTimeout: 5 * time.Second,
		},
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.StaticDir, "STATIC_DIR")
	setString(&c.FrontendURL, "FRONTEND_URL")
	setString(&c.LogLevel, "LOG_LEVEL")

	db := &c.Database
	setString(&db.Driver, "DB_DRIVER")
	setString(&db.Host, "DB_HOST")
	setString(&db.User, "DB_USER")
	setString(&db.Password, "DB_PASSWORD")
	// DB_PASS wins over DB_PASSWORD
	setString(&db.Password, "DB_PASS")
	setString(&db.Name, "DB_NAME")

	if v := os.Getenv("DB_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: DB_PORT: %w", err)
		}
		db.Port = n
	}
	if v := os.Getenv("DB_CONNECT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: DB_CONNECT_TIMEOUT: %w", err)
		}
		db.ConnectTimeout = d
	}
	if v := os.Getenv("CONTACT_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: CONTACT_RATE_LIMIT: %w", err)
		}
		c.ContactRateLimit = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// StoreOptions resolves which backend to open. DATABASE_URL takes
// precedence; otherwise the discrete DB_* settings are used, defaulting to
// MySQL. With nothing configured the in-memory store is selected.
func (c *Config) StoreOptions() (repository.Options, error) {
	opts := repository.Options{ConnectTimeout: c.Database.ConnectTimeout}

	var explicit repository.Driver
	if c.Database.Driver != "" {
		d, err := repository.ParseDriver(c.Database.Driver)
		if err != nil {
			return opts, err
		}
		explicit = d
	}

	if c.DatabaseURL != "" {
		return c.urlOptions(opts, explicit)
	}

	db := c.Database
	switch {
	case explicit == repository.DriverMemory:
		opts.Driver = repository.DriverMemory
	case explicit == repository.DriverSQLite:
		opts.Driver = repository.DriverSQLite
		opts.DSN = db.Name
		if opts.DSN == "" {
			opts.DSN = "userdesk.db"
		}
	case explicit != "" || db.Host != "" || db.User != "" || db.Name != "":
		opts.Driver = explicit
		if opts.Driver == "" {
			opts.Driver = repository.DriverMySQL
		}
		opts.DSN = c.discreteDSN(opts.Driver)
	default:
		opts.Driver = repository.DriverMemory
	}
	return opts, nil
}

func (c *Config) urlOptions(opts repository.Options, explicit repository.Driver) (repository.Options, error) {
	raw := c.DatabaseURL
	scheme, rest, _ := strings.Cut(raw, ":")
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		opts.Driver = repository.DriverPostgres
		opts.DSN = raw
	case "mysql":
		u, err := url.Parse(raw)
		if err != nil {
			return opts, fmt.Errorf("config: DATABASE_URL: %w", err)
		}
		port := 3306
		if p := u.Port(); p != "" {
			if port, err = strconv.Atoi(p); err != nil {
				return opts, fmt.Errorf("config: DATABASE_URL port: %w", err)
			}
		}
		password, _ := u.User.Password()
		opts.Driver = repository.DriverMySQL
		opts.DSN = repository.MySQLSettings{
			Host:     u.Hostname(),
			Port:     port,
			User:     u.User.Username(),
			Password: password,
			Database: strings.TrimPrefix(u.Path, "/"),
			Timeout:  c.Database.ConnectTimeout,
		}.DSN()
	case "sqlite", "sqlite3":
		opts.Driver = repository.DriverSQLite
		opts.DSN = strings.TrimPrefix(rest, "//")
	case "file":
		opts.Driver = repository.DriverSQLite
		opts.DSN = raw
	default:
		if explicit == "" {
			return opts, fmt.Errorf("%w: DATABASE_URL scheme %q", repository.ErrUnsupportedDriver, scheme)
		}
		opts.Driver = explicit
		opts.DSN = raw
	}
	return opts, nil
}

func (c *Config) discreteDSN(driver repository.Driver) string {
	db := c.Database
	host := db.Host
	if host == "" {
		host = "127.0.0.1"
	}
	name := db.Name
	if name == "" {
		name = "testdb"
	}

	if driver == repository.DriverPostgres {
		port := db.Port
		if port == 0 {
			port = 5432
		}
		u := url.URL{
			Scheme:   "postgres",
			Host:     host + ":" + strconv.Itoa(port),
			Path:     "/" + name,
			RawQuery: "sslmode=disable",
		}
		switch {
		case db.User != "" && db.Password != "":
			u.User = url.UserPassword(db.User, db.Password)
		case db.User != "":
			u.User = url.User(db.User)
		}
		return u.String()
	}

	port := db.Port
	if port == 0 {
		port = 3306
	}
	return repository.MySQLSettings{
		Host:     host,
		Port:     port,
		User:     db.User,
		Password: db.Password,
		Database: name,
		Timeout:  db.ConnectTimeout,
	}.DSN()
}
