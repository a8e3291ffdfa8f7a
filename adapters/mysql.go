package adapters

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/builders"
)

// Register client
func init() {
	_ = register(&MySQL{}, "mysql", "mariadb")
}

var _ core.Adapter = (*MySQL)(nil)

type MySQL struct{}

func (m *MySQL) Connect(target *core.ConnectionTarget) (core.Driver, error) {
	dsn, err := mysqlDSN(target)
	if err != nil {
		return nil, err
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql.ParseDSN: %w", err)
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mysql database: %w", err)
	}

	return &sqlDriver{
		c: builders.NewClient(sql.OpenDB(connector)),
	}, nil
}

// mysqlDSN converts a mysql://host:port/db?param=value url to the
// driver's own DSN format.
func mysqlDSN(target *core.ConnectionTarget) (string, error) {
	u, err := parseURL(target)
	if err != nil {
		return "", err
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}

	dsn := cfg.FormatDSN()
	if u.RawQuery == "" {
		return dsn, nil
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + u.RawQuery, nil
}
