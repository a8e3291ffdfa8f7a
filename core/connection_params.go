package core

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ConnectionTarget holds everything needed to open a database session.
// It is created once at startup and never mutated.
type ConnectionTarget struct {
	URL      string
	Username string
	Password string
}

// NewConnectionTarget returns a target with template expressions in all fields
// expanded (see expand).
func NewConnectionTarget(rawURL, username, password string) *ConnectionTarget {
	return &ConnectionTarget{
		URL:      expandOrDefault(rawURL),
		Username: expandOrDefault(username),
		Password: expandOrDefault(password),
	}
}

// String never includes a password, neither the separate one nor one
// embedded in the url.
func (t *ConnectionTarget) String() string {
	return fmt.Sprintf("%s@%s", t.Username, redactURL(t.URL))
}

var passwordParams = []string{"password", "passwd", "pwd"}

func redactURL(raw string) string {
	prefix := ""
	if len(raw) >= 5 && strings.EqualFold(raw[:5], "jdbc:") {
		prefix, raw = raw[:5], raw[5:]
	}

	u, err := url.Parse(raw)
	if err != nil {
		return prefix + "<invalid url>"
	}

	query := u.Query()
	redacted := false
	for key := range query {
		if slices.Contains(passwordParams, strings.ToLower(key)) {
			query.Set(key, "xxxxx")
			redacted = true
		}
	}
	if redacted {
		u.RawQuery = query.Encode()
	}

	return prefix + u.Redacted()
}
