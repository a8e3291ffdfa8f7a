package builders

import (
	"errors"

	"github.com/kndndrj/dbconsole/core"
)

var errNoNextRow = errors.New("no next row")

// NextRows creates next and hasNext functions from provided rows
func NextRows(rows []core.Row) (func() (core.Row, error), func() bool) {
	index := 0

	hasNext := func() bool {
		return index < len(rows)
	}

	next := func() (core.Row, error) {
		if !hasNext() {
			return nil, errNoNextRow
		}

		row := rows[index]
		index++
		return row, nil
	}

	return next, hasNext
}

// NextNil creates next and hasNext functions that don't return anything (no rows)
func NextNil() (func() (core.Row, error), func() bool) {
	hasNext := func() bool {
		return false
	}

	next := func() (core.Row, error) {
		return nil, errNoNextRow
	}

	return next, hasNext
}
