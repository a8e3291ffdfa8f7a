package adapters

import (
	"errors"
	"fmt"
	nurl "net/url"
	"strings"

	"github.com/kndndrj/dbconsole/core"
)

var (
	errNoValidTypeAliases   = errors.New("no valid type aliases provided")
	ErrUnsupportedTypeAlias = errors.New("no driver registered for provided type alias")
)

// registeredAdapters holds implemented adapters - specific adapters register themselves in their init functions.
// The main reason is to be able to compile the binary without unsupported os/arch of specific drivers.
var registeredAdapters = make(map[string]core.Adapter)

// register registers a new adapter for specific database
func register(adapter core.Adapter, aliases ...string) error {
	if len(aliases) < 1 {
		return errNoValidTypeAliases
	}

	invalidCount := 0
	for _, alias := range aliases {
		if alias == "" {
			invalidCount++
			continue
		}
		registeredAdapters[alias] = adapter
	}

	if invalidCount == len(aliases) {
		return errNoValidTypeAliases
	}

	return nil
}

var _ core.AdapterMux = (*Mux)(nil)

// Mux is an interface to all internal adapters. It picks the adapter
// by the scheme of the target url.
type Mux struct{}

func (*Mux) GetAdapter(target *core.ConnectionTarget) (core.Adapter, error) {
	typ, err := TypeOf(target.URL)
	if err != nil {
		return nil, err
	}

	adapter, ok := registeredAdapters[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTypeAlias, typ)
	}

	return adapter, nil
}

func (*Mux) AddAdapter(typ string, adapter core.Adapter) error {
	return register(adapter, typ)
}

// TypeOf returns the database type of a connection url, which is its
// scheme. A leading "jdbc:" is ignored, so both "jdbc:mysql://host/db"
// and "mysql://host/db" are of type "mysql".
func TypeOf(url string) (string, error) {
	typ, _, ok := strings.Cut(trimJDBC(url), ":")
	if !ok || typ == "" {
		return "", fmt.Errorf("%w: %q has no scheme", ErrUnsupportedTypeAlias, url)
	}

	return strings.ToLower(typ), nil
}

func trimJDBC(url string) string {
	if len(url) >= 5 && strings.EqualFold(url[:5], "jdbc:") {
		return url[5:]
	}
	return url
}

// parseURL parses the url of the target and fills in credentials that
// were passed separately. Credentials in the url itself are overridden.
func parseURL(target *core.ConnectionTarget) (*nurl.URL, error) {
	u, err := nurl.Parse(trimJDBC(target.URL))
	if err != nil {
		return nil, fmt.Errorf("could not parse db connection string: %w", err)
	}

	if target.Username != "" {
		u.User = nurl.UserPassword(target.Username, target.Password)
	}

	return u, nil
}

// NewConnection is a wrapper around core.NewConnection that uses the internal mux for
// adapter registration.
func NewConnection(target *core.ConnectionTarget, opts ...core.ConnectionOption) *core.Connection {
	return core.NewConnection(target, new(Mux), opts...)
}
