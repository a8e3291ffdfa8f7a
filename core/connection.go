package core

import (
	"context"
	"encoding/json"
	"fmt"
)

type (
	// Adapter opens database handles for a connection target.
	Adapter interface {
		Connect(target *ConnectionTarget) (Driver, error)
	}

	// AdapterMux picks the right adapter for a target.
	AdapterMux interface {
		GetAdapter(target *ConnectionTarget) (Adapter, error)
	}

	// Driver is an interface for a specific database driver. Query takes
	// "?" placeholders; drivers rebind them to their own dialect.
	Driver interface {
		Query(ctx context.Context, query string, args ...any) (ResultStream, error)
		Close()
	}
)

// Connection executes queries against a single target. By default every
// call opens its own driver and closes it before returning. With pooling
// enabled one driver is kept for the lifetime of the connection and calls
// only borrow a database connection from it.
type Connection struct {
	target *ConnectionTarget
	mux    AdapterMux
	log    Logger

	pooled bool
	pool   Driver
}

type ConnectionOption func(*Connection)

func WithPool() ConnectionOption {
	return func(c *Connection) {
		c.pooled = true
	}
}

func WithLogger(log Logger) ConnectionOption {
	return func(c *Connection) {
		c.log = log
	}
}

// NewConnection does not touch the database. Adapter resolution and
// connecting are deferred to the first call, so an invalid target only
// fails the calls made with it.
func NewConnection(target *ConnectionTarget, mux AdapterMux, opts ...ConnectionOption) *Connection {
	c := &Connection{
		target: target,
		mux:    mux,
		log:    NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Execute runs the query with bound args and returns the finished call.
// The call's cursor and database connection are released before Execute
// returns, on success and on failure.
func (c *Connection) Execute(ctx context.Context, query string, args ...any) *Call {
	exec := func(ctx context.Context) (ResultStream, error) {
		driver, release, err := c.acquire()
		if err != nil {
			return nil, err
		}

		stream, err := driver.Query(ctx, query, args...)
		if err != nil {
			release()
			return nil, fmt.Errorf("driver.Query: %w", err)
		}

		return &releasingStream{ResultStream: stream, release: release}, nil
	}

	onEvent := func(state CallState, call *Call) {
		if state.Failed() {
			c.log.Warnf("call %s %s after %s: %s", call.GetID(), state, call.GetTimeTaken(), call.Err())
			return
		}
		c.log.Debugf("call %s %s", call.GetID(), state)
	}

	call := runCall(ctx, exec, query, onEvent)
	if call.Err() == nil {
		c.log.Infof("call %s returned %d rows in %s", call.GetID(), call.result.Len(), call.GetTimeTaken())
	}
	if record, err := json.Marshal(call); err == nil {
		c.log.Debugf("call record: %s", record)
	}

	return call
}

// acquire returns a driver and the function that gives it back.
func (c *Connection) acquire() (Driver, func(), error) {
	if c.pooled && c.pool != nil {
		return c.pool, func() {}, nil
	}

	adapter, err := c.mux.GetAdapter(c.target)
	if err != nil {
		return nil, nil, fmt.Errorf("mux.GetAdapter: %w", err)
	}

	driver, err := adapter.Connect(c.target)
	if err != nil {
		return nil, nil, fmt.Errorf("adapter.Connect: %w", err)
	}

	if c.pooled {
		c.pool = driver
		return driver, func() {}, nil
	}

	return driver, driver.Close, nil
}

// Close releases the pooled driver, if any.
func (c *Connection) Close() {
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}

// releasingStream gives the driver back once the stream is closed.
type releasingStream struct {
	ResultStream
	release func()
	closed  bool
}

func (s *releasingStream) Close() {
	s.ResultStream.Close()
	if !s.closed {
		s.closed = true
		s.release()
	}
}
