package core

import (
	"fmt"
)

var ErrInvalidRange = func(from, to int) error { return fmt.Errorf("invalid selection range: %d ... %d", from, to) }

// Result is the drained form of the ResultStream iterator
type Result struct {
	header Header
	rows   []Row
}

// SetIter drains the ResultStream into the result and closes it,
// whether draining succeeds or not. Rows read before a failure are kept.
func (cr *Result) SetIter(iter ResultStream) error {
	// close iterator on return
	defer iter.Close()

	cr.header = iter.Header()
	cr.rows = make([]Row, 0)

	for iter.HasNext() {
		row, err := iter.Next()
		if err != nil {
			return err
		}
		if row == nil {
			break
		}

		cr.rows = append(cr.rows, row)
	}

	return nil
}

func (cr *Result) Format(formatter Formatter, opts *FormatterOptions) ([]byte, error) {
	if opts == nil {
		opts = &FormatterOptions{}
	}

	f, err := formatter.Format(cr.header, cr.rows, opts)
	if err != nil {
		return nil, fmt.Errorf("formatter.Format: %w", err)
	}

	return f, nil
}

func (cr *Result) Len() int {
	return len(cr.rows)
}

func (cr *Result) IsEmpty() bool {
	return len(cr.rows) == 0
}

func (cr *Result) Header() Header {
	return cr.header
}

// Rows returns a range of rows. Negative indexes count from the end,
// so Rows(0, -1) returns everything.
func (cr *Result) Rows(from, to int) ([]Row, error) {
	// validation
	if (from < 0 && to < 0) || (from >= 0 && to >= 0) {
		if from > to {
			return nil, ErrInvalidRange(from, to)
		}
	}
	// undefined -> error
	if from < 0 && to >= 0 {
		return nil, ErrInvalidRange(from, to)
	}

	length := len(cr.rows)
	if from < 0 {
		from += length + 1
		if from < 0 {
			from = 0
		}
	}
	if to < 0 {
		to += length + 1
		if to < 0 {
			to = 0
		}
	}

	if from > length {
		from = length
	}
	if to > length {
		to = length
	}

	return cr.rows[from:to], nil
}
