package format

import (
	"encoding/json"
	"fmt"

	"github.com/kndndrj/dbconsole/core"
)

var _ core.Formatter = (*JSON)(nil)

type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

// record keeps the column order of the result when marshaled.
type record struct {
	header core.Header
	row    core.Row
}

func (r record) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, val := range r.row {
		if i > 0 {
			buf = append(buf, ',')
		}

		key, err := json.Marshal(columnName(r.header, i))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}

		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	return append(buf, '}'), nil
}

func (jf *JSON) Format(header core.Header, rows []core.Row, _ *core.FormatterOptions) ([]byte, error) {
	data := make([]record, 0, len(rows))
	for _, row := range rows {
		data = append(data, record{header: header, row: row})
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent: %w", err)
	}

	return append(out, '\n'), nil
}
