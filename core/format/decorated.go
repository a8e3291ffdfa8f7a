package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kndndrj/dbconsole/core"
)

var _ core.Formatter = (*Decorated)(nil)

// Decorated has the layout of Record, colored for a terminal.
type Decorated struct {
	title     text.Colors
	key       text.Colors
	value     text.Colors
	separator text.Colors
	notice    text.Colors
}

func NewDecorated() *Decorated {
	return &Decorated{
		title:     text.Colors{text.Bold, text.FgHiCyan},
		key:       text.Colors{text.FgCyan},
		value:     text.Colors{text.FgHiWhite},
		separator: text.Colors{text.FgHiBlue},
		notice:    text.Colors{text.FgHiRed},
	}
}

func (df *Decorated) Format(header core.Header, rows []core.Row, opts *core.FormatterOptions) ([]byte, error) {
	b := new(bytes.Buffer)
	line := df.separator.Sprint(strings.Repeat("=", 50))

	if opts.Title != "" {
		fmt.Fprintln(b, df.title.Sprint(opts.Title))
		fmt.Fprintln(b, line)
	}

	if len(rows) == 0 {
		fmt.Fprintln(b, df.notice.Sprint(emptyNotice(opts)))
		return b.Bytes(), nil
	}

	width := 0
	for _, h := range header {
		width = max(width, text.RuneWidthWithoutEscSequences(h))
	}

	for _, row := range rows {
		for i, val := range row {
			name := text.Pad(columnName(header, i), width, ' ')
			fmt.Fprintf(b, "%s %s\n", df.key.Sprint(name+" |"), df.value.Sprint(FormatValue(val)))
		}
		fmt.Fprintln(b, df.separator.Sprint(strings.Repeat("-", 50)))
	}

	return b.Bytes(), nil
}
