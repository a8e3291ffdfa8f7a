package adapters

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/builders"
)

// Register client
func init() {
	_ = register(&Postgres{}, "postgres", "postgresql", "pg")
}

var _ core.Adapter = (*Postgres)(nil)

type Postgres struct{}

func (p *Postgres) Connect(target *core.ConnectionTarget) (core.Driver, error) {
	u, err := parseURL(target)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "pg" {
		u.Scheme = "postgres"
	}

	db, err := sql.Open("postgres", u.String())
	if err != nil {
		return nil, fmt.Errorf("unable to connect to postgres database: %w", err)
	}

	return &sqlDriver{
		c: builders.NewClient(db, builders.WithPlaceholders(builders.PlaceholderDollar)),
	}, nil
}
