package adapters

import (
	"context"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/builders"
)

var _ core.Driver = (*sqlDriver)(nil)

// sqlDriver serves every database/sql backed adapter.
type sqlDriver struct {
	c *builders.Client
}

func (d *sqlDriver) Query(ctx context.Context, query string, args ...any) (core.ResultStream, error) {
	return d.c.Query(ctx, query, args...)
}

func (d *sqlDriver) Close() {
	d.c.Close()
}
