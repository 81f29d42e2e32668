package repository

import (
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLSettings are the discrete connection settings of a MySQL server.
type MySQLSettings struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Timeout  time.Duration
}

// DSN formats s as a go-sql-driver/mysql data source name.
func (s MySQLSettings) DSN() string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	cfg.User = s.User
	cfg.Passwd = s.Password
	cfg.DBName = s.Database
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	if s.Timeout > 0 {
		cfg.Timeout = s.Timeout
	}
	return cfg.FormatDSN()
}
