//go:build (darwin && (amd64 || arm64)) || (freebsd && (386 || amd64 || arm || arm64)) || (linux && (386 || amd64 || arm || arm64 || ppc64le || riscv64 || s390x)) || (netbsd && amd64) || (openbsd && (amd64 || arm64)) || (windows && (amd64 || arm64))

package adapters

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/builders"
)

// Register client
func init() {
	_ = register(&SQLite{}, "sqlite", "sqlite3", "file")
}

var _ core.Adapter = (*SQLite)(nil)

// SQLite opens local database files. Credentials of the target are not used.
type SQLite struct{}

func (s *SQLite) Connect(target *core.ConnectionTarget) (core.Driver, error) {
	db, err := sql.Open("sqlite", sqliteDSN(target.URL))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to sqlite database: %w", err)
	}

	return &sqlDriver{
		c: builders.NewClient(db),
	}, nil
}

// sqliteDSN strips the scheme from "sqlite:///path/to.db" style urls.
// "file:" urls are passed to the driver as they are.
func sqliteDSN(url string) string {
	url = trimJDBC(url)
	for _, prefix := range []string{"sqlite3://", "sqlite://", "sqlite3:", "sqlite:"} {
		if len(url) >= len(prefix) && strings.EqualFold(url[:len(prefix)], prefix) {
			return url[len(prefix):]
		}
	}
	return url
}
