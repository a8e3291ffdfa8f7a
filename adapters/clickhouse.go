package adapters

import (
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/builders"
)

// Register client
func init() {
	_ = register(&Clickhouse{}, "clickhouse")
}

var _ core.Adapter = (*Clickhouse)(nil)

type Clickhouse struct{}

func (c *Clickhouse) Connect(target *core.ConnectionTarget) (core.Driver, error) {
	options, err := clickhouse.ParseDSN(trimJDBC(target.URL))
	if err != nil {
		return nil, fmt.Errorf("could not parse db connection string: %w", err)
	}

	if target.Username != "" {
		options.Auth.Username = target.Username
		options.Auth.Password = target.Password
	}

	return &sqlDriver{
		c: builders.NewClient(clickhouse.OpenDB(options)),
	}, nil
}
