package mock

import (
	"context"
	"fmt"

	"github.com/kndndrj/dbconsole/core"
)

var _ core.Driver = (*driver)(nil)

type driver struct {
	adapter *Adapter
	closed  bool
}

func (d *driver) Query(ctx context.Context, query string, args ...any) (core.ResultStream, error) {
	d.adapter.Queries = append(d.adapter.Queries, Query{Text: query, Args: args})

	eff, ok := d.adapter.config.querySideEffects[query]
	if ok {
		err := eff(ctx)
		if err != nil {
			return nil, fmt.Errorf("side effect error: %w", err)
		}
	}

	rows, ok := d.adapter.config.queryRows[query]
	if !ok {
		rows = d.adapter.data
	}

	stream := NewResultStream(rows, d.adapter.config.resultStreamOptions...)
	stream.onClose = func() { d.adapter.StreamsClosed++ }
	d.adapter.StreamsOpened++

	return stream, nil
}

func (d *driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.adapter.Closes++
}

var (
	_ core.Adapter    = (*Adapter)(nil)
	_ core.AdapterMux = (*Adapter)(nil)
)

// Query is a recorded driver query.
type Query struct {
	Text string
	Args []any
}

// Adapter is an in-memory adapter which records how it is used.
// It is its own AdapterMux.
type Adapter struct {
	data   []core.Row
	config *adapterConfig

	Queries       []Query
	Connects      int
	Closes        int
	StreamsOpened int
	StreamsClosed int
}

func NewAdapter(data []core.Row, opts ...AdapterOption) *Adapter {
	config := &adapterConfig{
		querySideEffects: make(map[string]func(context.Context) error),
		queryRows:        make(map[string][]core.Row),

		resultStreamOptions: []ResultStreamOption{},
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Adapter{
		data:   data,
		config: config,
	}
}

func (a *Adapter) GetAdapter(_ *core.ConnectionTarget) (core.Adapter, error) {
	if a.config.muxErr != nil {
		return nil, a.config.muxErr
	}
	return a, nil
}

func (a *Adapter) Connect(_ *core.ConnectionTarget) (core.Driver, error) {
	if a.config.connectErr != nil {
		return nil, a.config.connectErr
	}

	a.Connects++
	return &driver{adapter: a}, nil
}

// Open returns the number of drivers that were connected and not closed yet.
func (a *Adapter) Open() int {
	return a.Connects - a.Closes
}
