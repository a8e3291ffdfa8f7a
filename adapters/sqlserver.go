package adapters

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/microsoft/go-mssqldb"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/builders"
)

// Register client
func init() {
	_ = register(&SQLServer{}, "sqlserver", "mssql")
}

var _ core.Adapter = (*SQLServer)(nil)

type SQLServer struct{}

func (s *SQLServer) Connect(target *core.ConnectionTarget) (core.Driver, error) {
	u, err := parseURL(target)
	if err != nil {
		return nil, err
	}
	u.Scheme = "sqlserver"

	db, err := sql.Open("sqlserver", u.String())
	if err != nil {
		return nil, fmt.Errorf("unable to connect to sqlserver database: %w", err)
	}

	return &sqlDriver{
		c: builders.NewClient(db,
			builders.WithPlaceholders(builders.PlaceholderAt),
			builders.WithCustomTypeProcessor("uniqueidentifier", uniqueIdentifier),
		),
	}, nil
}

// uniqueIdentifier renders sqlserver guids as text.
func uniqueIdentifier(a any) any {
	b, ok := a.([]byte)
	if !ok {
		return a
	}

	id, err := uuid.FromBytes(b)
	if err != nil {
		return a
	}

	return id.String()
}
