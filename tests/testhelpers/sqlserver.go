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

type MSSQLServerContainer struct {
	tc.Container
	Target *core.ConnectionTarget
	Conn   *core.Connection
}

// NewSQLServerContainer starts a MS SQL Server container seeded with the
// northwind fixture and returns it with a connection to it.
func NewSQLServerContainer(ctx context.Context, opts ...core.ConnectionOption) (*MSSQLServerContainer, error) {
	const password = "H3ll0@W0rld"
	seedFile, err := GetTestDataFile("sqlserver_seed.sql")
	if err != nil {
		return nil, err
	}

	req := tc.ContainerRequest{
		Image:        "mcr.microsoft.com/mssql/server:2022-CU17-ubuntu-22.04",
		ExposedPorts: []string{"1433/tcp"},
		Env: map[string]string{
			"ACCEPT_EULA":       "Y", // ok for testing purposes
			"MSSQL_SA_PASSWORD": password,
		},
		Files: []tc.ContainerFile{
			{
				Reader:            seedFile,
				ContainerFilePath: "/tmp/seed.sql",
				FileMode:          0o644,
			},
		},
		WaitingFor: wait.ForLog("Recovery is complete").WithStartupTimeout(2 * time.Minute),
	}

	ctr, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		ProviderType:     GetContainerProvider(),
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	code, _, err := ctr.Exec(ctx, []string{
		"/opt/mssql-tools18/bin/sqlcmd",
		"-S", "localhost",
		"-U", "sa",
		"-P", password,
		"-No",
		"-i", "/tmp/seed.sql",
	})
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, fmt.Errorf("seeding sqlserver exited with code %d", code)
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := ctr.MappedPort(ctx, "1433/tcp")
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("sqlserver://%s:%s?database=northwind&encrypt=false&TrustServerCertificate=true", host, port.Port())
	target := core.NewConnectionTarget(url, "sa", password)

	return &MSSQLServerContainer{
		Container: ctr,
		Target:    target,
		Conn:      adapters.NewConnection(target, opts...),
	}, nil
}

// NewConn returns another connection to the container.
func (p *MSSQLServerContainer) NewConn(opts ...core.ConnectionOption) *core.Connection {
	return adapters.NewConnection(p.Target, opts...)
}
