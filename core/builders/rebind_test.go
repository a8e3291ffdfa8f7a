package builders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kndndrj/dbconsole/core/builders"
)

func TestRebind(t *testing.T) {
	query := "SELECT * FROM actor WHERE first_name = ? AND last_name = ? AND note <> 'why?'"

	tests := []struct {
		style builders.PlaceholderStyle
		want  string
	}{
		{builders.PlaceholderQuestion, query},
		{builders.PlaceholderDollar, "SELECT * FROM actor WHERE first_name = $1 AND last_name = $2 AND note <> 'why?'"},
		{builders.PlaceholderAt, "SELECT * FROM actor WHERE first_name = @p1 AND last_name = @p2 AND note <> 'why?'"},
		{builders.PlaceholderColon, "SELECT * FROM actor WHERE first_name = :1 AND last_name = :2 AND note <> 'why?'"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, builders.Rebind(tt.style, query))
	}
}
