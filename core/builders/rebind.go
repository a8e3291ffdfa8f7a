package builders

import (
	"strconv"
	"strings"
)

// PlaceholderStyle is the bind parameter syntax of a database.
type PlaceholderStyle int

const (
	// PlaceholderQuestion is "?" (mysql, sqlite, clickhouse)
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar is "$1" (postgres)
	PlaceholderDollar
	// PlaceholderAt is "@p1" (sqlserver)
	PlaceholderAt
	// PlaceholderColon is ":1" (oracle)
	PlaceholderColon
)

func (s PlaceholderStyle) prefix() string {
	switch s {
	case PlaceholderDollar:
		return "$"
	case PlaceholderAt:
		return "@p"
	case PlaceholderColon:
		return ":"
	default:
		return "?"
	}
}

// Rebind rewrites "?" placeholders of a query to the given style.
// Question marks inside single quoted literals are left alone.
func Rebind(style PlaceholderStyle, query string) string {
	if style == PlaceholderQuestion || !strings.Contains(query, "?") {
		return query
	}

	var (
		out     strings.Builder
		n       int
		inQuote bool
	)
	out.Grow(len(query) + 8)

	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			out.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			out.WriteString(style.prefix())
			out.WriteString(strconv.Itoa(n))
		default:
			out.WriteRune(r)
		}
	}

	return out.String()
}
