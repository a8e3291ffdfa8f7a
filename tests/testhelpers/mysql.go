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

type MySQLContainer struct {
	tc.Container
	Target *core.ConnectionTarget
	Conn   *core.Connection
}

// NewMySQLContainer starts a MySQL container seeded with the northwind
// fixture and returns it with a connection to it.
func NewMySQLContainer(ctx context.Context, opts ...core.ConnectionOption) (*MySQLContainer, error) {
	const password = "password"
	seedFile, err := GetTestDataFile("mysql_seed.sql")
	if err != nil {
		return nil, err
	}

	req := tc.ContainerRequest{
		Image:        "mysql:8.4",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": password,
			"MYSQL_DATABASE":      "northwind",
		},
		Files: []tc.ContainerFile{
			{
				Reader:            seedFile,
				ContainerFilePath: "/docker-entrypoint-initdb.d/seed.sql",
				FileMode:          0o644,
			},
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("port: 3306  MySQL Community Server"),
			wait.ForListeningPort("3306/tcp"),
		).WithDeadline(2 * time.Minute),
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
	port, err := ctr.MappedPort(ctx, "3306/tcp")
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("jdbc:mysql://%s:%s/northwind", host, port.Port())
	target := core.NewConnectionTarget(url, "root", password)

	return &MySQLContainer{
		Container: ctr,
		Target:    target,
		Conn:      adapters.NewConnection(target, opts...),
	}, nil
}

// NewConn returns another connection to the container.
func (p *MySQLContainer) NewConn(opts ...core.ConnectionOption) *core.Connection {
	return adapters.NewConnection(p.Target, opts...)
}
