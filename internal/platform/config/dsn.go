package config

import (
	"fmt"
	"net/url"

	"github.com/go-sql-driver/mysql"
)

// Supported database/sql driver names.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// DSN assembles the driver-specific connection string from the individual
// connection fields. Params is a URL query string (e.g. "sslmode=disable")
// appended in the driver's own format.
func (d *DatabaseConfig) DSN() (string, error) {
	params, err := url.ParseQuery(d.Params)
	if err != nil {
		return "", fmt.Errorf("parsing database.params: %w", err)
	}

	switch d.Driver {
	case DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.User = d.User
		cfg.Passwd = d.Password
		cfg.Net = "tcp"
		cfg.Addr = d.Host
		cfg.DBName = d.Name
		if len(params) > 0 {
			cfg.Params = make(map[string]string, len(params))
			for key := range params {
				cfg.Params[key] = params.Get(key)
			}
		}
		return cfg.FormatDSN(), nil

	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			Host:     d.Host,
			Path:     "/" + d.Name,
			RawQuery: params.Encode(),
		}
		if d.User != "" {
			u.User = url.UserPassword(d.User, d.Password)
		}
		return u.String(), nil

	case DriverSQLite:
		if len(params) == 0 {
			return d.Name, nil
		}
		return d.Name + "?" + params.Encode(), nil

	default:
		return "", fmt.Errorf("unsupported database driver %q", d.Driver)
	}
}
