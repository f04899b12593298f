// Package db is the data-access layer between the dashboard and the
// relational store: one connection per operation, parameterized statements
// only, guaranteed release on every exit path.
package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/campusops/univserv/internal/config"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverOracle   = "oracle"
)

// Provider opens one database connection per operation using the injected
// configuration. No pooling, no retry, no reuse across calls: the handle
// returned by Open is closed by the caller before the operation returns.
type Provider struct {
	cfg *config.Config
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{cfg: cfg}
}

func (p *Provider) Driver() string {
	return strings.ToLower(p.cfg.Driver)
}

// Open dials the store and verifies the connection with a ping. Callers own
// the returned handle and must close it; Exec and Fetch do this for every
// exit path.
func (p *Provider) Open() (*sql.DB, error) {
	driver := p.Driver()

	dsn, err := p.connString()
	if err != nil {
		return nil, err
	}

	driverName := driver
	if driver == DriverOracle {
		driverName = "godror"
	}
	if driver == DriverSQLite {
		driverName = "sqlite3"
	}

	handle, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	// One connection per in-flight operation.
	handle.SetMaxOpenConns(1)

	if err := handle.Ping(); err != nil {
		handle.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}
	return handle, nil
}

func (p *Provider) connString() (string, error) {
	c := p.cfg
	switch p.Driver() {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.User, c.Password, c.Host, c.Port, c.Database), nil
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.Database), nil
	case DriverSQLite:
		return c.Database, nil
	case DriverOracle:
		return fmt.Sprintf(`user="%s" password="%s" connectString="%s:%d/%s"`,
			c.User, c.Password, c.Host, c.Port, c.Database), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", c.Driver)
	}
}

func SupportedDrivers() []string {
	return []string{DriverMySQL, DriverPostgres, DriverSQLite, DriverOracle}
}
