package builders

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kndndrj/dbconsole/core"
)

// default sql client used by other specific implementations
type Client struct {
	db             *sql.DB
	placeholders   PlaceholderStyle
	typeProcessors map[string]func(any) any
}

func NewClient(db *sql.DB, opts ...ClientOption) *Client {
	config := clientConfig{
		placeholders:   PlaceholderQuestion,
		typeProcessors: make(map[string]func(any) any),
	}
	for _, opt := range opts {
		opt(&config)
	}

	return &Client{
		db:             db,
		placeholders:   config.placeholders,
		typeProcessors: config.typeProcessors,
	}
}

// Conn borrows a single connection from the pool. It has to be closed
// to be given back.
func (c *Client) Conn(ctx context.Context) (*Conn, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	return &Conn{
		conn:           conn,
		placeholders:   c.placeholders,
		typeProcessors: c.typeProcessors,
	}, nil
}

// Query borrows a connection, runs the query on it and returns a stream
// which gives the connection back when closed.
func (c *Client) Query(ctx context.Context, query string, args ...any) (core.ResultStream, error) {
	con, err := c.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.Conn: %w", err)
	}

	rows, err := con.Query(ctx, query, args...)
	if err != nil {
		_ = con.Close()
		return nil, err
	}

	rows.SetCallback(func() {
		_ = con.Close()
	})
	return rows, nil
}

func (c *Client) Close() {
	_ = c.db.Close()
}

// connection to use for execution
type Conn struct {
	conn           *sql.Conn
	placeholders   PlaceholderStyle
	typeProcessors map[string]func(any) any
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

func (c *Conn) getTypeProcessor(typ string) func(any) any {
	proc, ok := c.typeProcessors[strings.ToLower(typ)]
	if ok {
		return proc
	}

	return func(val any) any {
		return Normalize(typ, val)
	}
}

// Query executes a query on a connection and returns a result stream.
// With args the statement is prepared and the args are bound to it.
func (c *Conn) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	query = Rebind(c.placeholders, query)

	var (
		dbRows *sql.Rows
		err    error
		stmt   *sql.Stmt
	)
	if len(args) > 0 {
		stmt, err = c.conn.PrepareContext(ctx, query)
		if err != nil {
			return nil, err
		}
		dbRows, err = stmt.QueryContext(ctx, args...)
		if err != nil {
			_ = stmt.Close()
			return nil, err
		}
	} else {
		dbRows, err = c.conn.QueryContext(ctx, query)
		if err != nil {
			return nil, err
		}
	}

	closeAll := func() {
		_ = dbRows.Close()
		if stmt != nil {
			_ = stmt.Close()
		}
	}

	header, err := dbRows.Columns()
	if err != nil {
		closeAll()
		return nil, err
	}

	dbCols, err := dbRows.ColumnTypes()
	if err != nil {
		closeAll()
		return nil, err
	}

	// advance the cursor ahead of Next so HasNext can be answered
	var (
		advanced bool
		hasRow   bool
	)
	hasNextFunc := func() bool {
		if !advanced {
			hasRow = dbRows.Next()
			advanced = true
		}
		// a failed cursor still reports a next "row" so the error is surfaced by Next
		return hasRow || dbRows.Err() != nil
	}

	nextFunc := func() (core.Row, error) {
		hasNextFunc()
		if !hasRow {
			return nil, dbRows.Err()
		}
		advanced = false

		columns := make([]any, len(dbCols))
		columnPointers := make([]any, len(dbCols))
		for i := range columns {
			columnPointers[i] = &columns[i]
		}

		if err := dbRows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		row := make(core.Row, len(dbCols))
		for i := range dbCols {
			proc := c.getTypeProcessor(dbCols[i].DatabaseTypeName())
			row[i] = proc(columns[i])
		}

		return row, nil
	}

	rows := NewResultBuilder().
		WithNextFunc(nextFunc, hasNextFunc).
		WithHeader(header).
		WithCloseFunc(closeAll).
		Build()

	return rows, nil
}
