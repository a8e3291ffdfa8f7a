package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kndndrj/dbconsole/core"
)

var _ core.Formatter = (*Table)(nil)

type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Format(header core.Header, rows []core.Row, opts *core.FormatterOptions) ([]byte, error) {
	if len(rows) == 0 {
		return []byte(emptyNotice(opts) + "\n"), nil
	}

	tableHeaders := table.Row{""}
	for _, k := range header {
		tableHeaders = append(tableHeaders, k)
	}

	var tableRows []table.Row
	for i, row := range rows {
		indexed := table.Row{i + 1}
		for _, val := range row {
			if val == nil {
				val = "NULL"
			}
			indexed = append(indexed, val)
		}
		tableRows = append(tableRows, indexed)
	}

	t := table.NewWriter()
	if opts.Title != "" {
		t.SetTitle(opts.Title)
	}
	t.AppendHeader(tableHeaders)
	t.AppendRows(tableRows)
	t.AppendSeparator()
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false
	t.SuppressTrailingSpaces()

	return []byte(t.Render() + "\n"), nil
}
