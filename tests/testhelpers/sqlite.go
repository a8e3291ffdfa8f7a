package testhelpers

import (
	"database/sql"
	"fmt"
	"io"
	"path/filepath"

	"github.com/kndndrj/dbconsole/adapters"
	"github.com/kndndrj/dbconsole/core"
)

type SQLiteDatabase struct {
	Path   string
	Target *core.ConnectionTarget
	Conn   *core.Connection
}

// NewSQLiteDatabase creates a database file in dir seeded with the
// northwind fixture. SQLite runs in process, so no container is needed.
func NewSQLiteDatabase(dir string, opts ...core.ConnectionOption) (*SQLiteDatabase, error) {
	seedFile, err := GetTestDataFile("sqlite_seed.sql")
	if err != nil {
		return nil, err
	}
	defer seedFile.Close()

	seed, err := io.ReadAll(seedFile)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "northwind.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.Exec(string(seed)); err != nil {
		return nil, fmt.Errorf("seeding %s: %w", path, err)
	}

	target := core.NewConnectionTarget("sqlite://"+path, "", "")

	return &SQLiteDatabase{
		Path:   path,
		Target: target,
		Conn:   adapters.NewConnection(target, opts...),
	}, nil
}

// NewConn returns another connection to the database.
func (p *SQLiteDatabase) NewConn(opts ...core.ConnectionOption) *core.Connection {
	return adapters.NewConnection(p.Target, opts...)
}
