package testhelpers

import (
	"context"
	"fmt"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kndndrj/dbconsole/adapters"
	"github.com/kndndrj/dbconsole/core"
)

type ClickHouseContainer struct {
	tc.Container
	Target *core.ConnectionTarget
	Conn   *core.Connection
}

// NewClickHouseContainer starts a clickhouse container seeded with the
// northwind fixture and returns it with a connection to it.
func NewClickHouseContainer(ctx context.Context, opts ...core.ConnectionOption) (*ClickHouseContainer, error) {
	seedFile, err := GetTestDataFile("clickhouse_seed.sql")
	if err != nil {
		return nil, err
	}

	req := tc.ContainerRequest{
		Image:        "clickhouse/clickhouse-server:25.1-alpine",
		ExposedPorts: []string{"9000/tcp", "8123/tcp"},
		Env: map[string]string{
			"CLICKHOUSE_USER":     "admin",
			"CLICKHOUSE_PASSWORD": "",
			"CLICKHOUSE_DB":       "northwind",

			"CLICKHOUSE_DEFAULT_ACCESS_MANAGEMENT": "1",
		},
		Files: []tc.ContainerFile{
			{
				Reader:            seedFile,
				ContainerFilePath: "/docker-entrypoint-initdb.d/seed.sql",
				FileMode:          0o644,
			},
		},
		WaitingFor: wait.ForHTTP("/ping").WithPort("8123/tcp").WithStartupTimeout(time.Minute),
	}

	ctr, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		ProviderType:     GetContainerProvider(),
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := ctr.MappedPort(ctx, "9000/tcp")
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("clickhouse://%s:%s/northwind", host, port.Port())
	target := core.NewConnectionTarget(url, "admin", "")

	return &ClickHouseContainer{
		Container: ctr,
		Target:    target,
		Conn:      adapters.NewConnection(target, opts...),
	}, nil
}

// NewConn returns another connection to the container.
func (p *ClickHouseContainer) NewConn(opts ...core.ConnectionOption) *core.Connection {
	return adapters.NewConnection(p.Target, opts...)
}
