package mock

import (
	"context"

	"github.com/kndndrj/dbconsole/core"
)

type adapterConfig struct {
	querySideEffects map[string]func(context.Context) error
	queryRows        map[string][]core.Row
	muxErr           error
	connectErr       error

	resultStreamOptions []ResultStreamOption
}

type AdapterOption func(*adapterConfig)

func AdapterWithQuerySideEffect(query string, sideEffect func(context.Context) error) AdapterOption {
	return func(c *adapterConfig) {
		_, ok := c.querySideEffects[query]
		if ok {
			panic("side effect already registered for query: " + query)
		}

		c.querySideEffects[query] = sideEffect
	}
}

// AdapterWithQueryRows makes the query return the given rows instead of the
// adapter's default data.
func AdapterWithQueryRows(query string, rows []core.Row) AdapterOption {
	return func(c *adapterConfig) {
		_, ok := c.queryRows[query]
		if ok {
			panic("rows already registered for query: " + query)
		}

		c.queryRows[query] = rows
	}
}

// AdapterWithResolveError makes GetAdapter fail, as it does for an unknown url.
func AdapterWithResolveError(err error) AdapterOption {
	return func(c *adapterConfig) {
		c.muxErr = err
	}
}

func AdapterWithConnectError(err error) AdapterOption {
	return func(c *adapterConfig) {
		c.connectErr = err
	}
}

func AdapterWithResultStreamOpts(opts ...ResultStreamOption) AdapterOption {
	return func(c *adapterConfig) {
		c.resultStreamOptions = append(c.resultStreamOptions, opts...)
	}
}
