package mock

import (
	"fmt"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/builders"
)

var _ core.ResultStream = (*ResultStream)(nil)

type ResultStream struct {
	next    func() (core.Row, error)
	hasNext func() bool
	config  *resultStreamConfig
	index   int
	onClose func()
	closed  bool
}

func makeDefaultHeader(rows []core.Row) core.Header {
	var header core.Header
	if len(rows) > 0 {
		for i := range rows[0] {
			header = append(header, fmt.Sprintf("header_%d", i))
		}
	}
	return header
}

// NewResultStream returns a mocked result stream with provided rows.
// It creates a header that matches the number of columns in the first row
// in form of: <header_0>, <header_1>, etc.
func NewResultStream(rows []core.Row, opts ...ResultStreamOption) *ResultStream {
	config := &resultStreamConfig{
		header:   makeDefaultHeader(rows),
		failAt:   -1,
		failWith: nil,
	}
	for _, opt := range opts {
		opt(config)
	}

	next, hasNext := builders.NextRows(rows)

	return &ResultStream{
		next:    next,
		hasNext: hasNext,
		config:  config,
	}
}

func (rs *ResultStream) Header() core.Header {
	return rs.config.header
}

func (rs *ResultStream) Next() (core.Row, error) {
	if rs.index == rs.config.failAt {
		return nil, rs.config.failWith
	}
	rs.index++
	return rs.next()
}

func (rs *ResultStream) HasNext() bool {
	if rs.index == rs.config.failAt {
		return true
	}
	return rs.hasNext()
}

func (rs *ResultStream) Close() {
	if rs.closed {
		return
	}
	rs.closed = true
	if rs.onClose != nil {
		rs.onClose()
	}
}

// NewRows returns a slice of rows in form of:
//
//	{ <index>(int64), "row_<index>"(string) }
//
// where the first index is "from" and the last one is one less than "to".
func NewRows(from, to int) []core.Row {
	var rows []core.Row

	for i := from; i < to; i++ {
		rows = append(rows, core.Row{int64(i), fmt.Sprintf("row_%d", i)})
	}
	return rows
}
