package testhelpers

import (
	"context"

	tc "github.com/testcontainers/testcontainers-go"
	tcpsql "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/kndndrj/dbconsole/adapters"
	"github.com/kndndrj/dbconsole/core"
)

type PostgresContainer struct {
	*tcpsql.PostgresContainer
	Target *core.ConnectionTarget
	Conn   *core.Connection
}

// NewPostgresContainer starts a postgres container seeded with the
// northwind fixture and returns it with a connection to it.
func NewPostgresContainer(ctx context.Context, opts ...core.ConnectionOption) (*PostgresContainer, error) {
	seedFile, err := GetTestDataFile("postgres_seed.sql")
	if err != nil {
		return nil, err
	}

	ctr, err := tcpsql.Run(
		ctx,
		"postgres:16-alpine",
		tcpsql.BasicWaitStrategies(),
		tc.CustomizeRequest(tc.GenericContainerRequest{
			ProviderType: GetContainerProvider(),
		}),
		tcpsql.WithInitScripts(seedFile.Name()),
		tcpsql.WithDatabase("northwind"),
		tcpsql.WithUsername("northwind"),
		tcpsql.WithPassword("northwind"),
	)
	if err != nil {
		return nil, err
	}
	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	// credentials are passed separately and replace the ones in the url
	target := core.NewConnectionTarget(url, "northwind", "northwind")

	return &PostgresContainer{
		PostgresContainer: ctr,
		Target:            target,
		Conn:              adapters.NewConnection(target, opts...),
	}, nil
}

// NewConn returns another connection to the container.
func (p *PostgresContainer) NewConn(opts ...core.ConnectionOption) *core.Connection {
	return adapters.NewConnection(p.Target, opts...)
}
