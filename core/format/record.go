package format

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kndndrj/dbconsole/core"
)

// RecordSeparator ends every record.
const RecordSeparator = "------------------"

// DefaultEmptyNotice is printed for an empty result when the caller
// doesn't provide its own notice.
const DefaultEmptyNotice = "No rows found."

var (
	intPattern   = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

var _ core.Formatter = (*Record)(nil)

// Record prints every row as a stack of "Column: value" lines followed by
// a separator. The output can be read back with ParseRecords.
type Record struct{}

func NewRecord() *Record {
	return &Record{}
}

func (rf *Record) Format(header core.Header, rows []core.Row, opts *core.FormatterOptions) ([]byte, error) {
	b := new(bytes.Buffer)

	if opts.Title != "" {
		fmt.Fprintf(b, "%s:\n%s\n", opts.Title, RecordSeparator)
	}

	if len(rows) == 0 {
		fmt.Fprintln(b, emptyNotice(opts))
		return b.Bytes(), nil
	}

	for _, row := range rows {
		for i, val := range row {
			fmt.Fprintf(b, "%s: %s\n", columnName(header, i), FormatValue(val))
		}
		fmt.Fprintln(b, RecordSeparator)
	}

	return b.Bytes(), nil
}

func emptyNotice(opts *core.FormatterOptions) string {
	if opts.EmptyNotice != "" {
		return opts.EmptyNotice
	}
	return DefaultEmptyNotice
}

func columnName(header core.Header, i int) string {
	if i < len(header) {
		return header[i]
	}
	return fmt.Sprintf("<unknown-field-%d>", i)
}

// FormatValue renders a scalar so that ParseValue returns it unchanged.
// Floats keep at least two decimals and text that could be mistaken for
// another scalar is quoted.
func FormatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		dot := strings.IndexByte(s, '.')
		if dot < 0 || len(s)-dot-1 < 2 {
			return strconv.FormatFloat(v, 'f', 2, 64)
		}
		return s
	case bool:
		return strconv.FormatBool(v)
	case string:
		if isAmbiguous(v) {
			return strconv.Quote(v)
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

func isAmbiguous(s string) bool {
	switch s {
	case "", "NULL", "true", "false":
		return true
	}
	return intPattern.MatchString(s) ||
		floatPattern.MatchString(s) ||
		strings.HasPrefix(s, `"`) ||
		strings.HasSuffix(s, ":") ||
		strings.TrimSpace(s) != s ||
		strings.ContainsAny(s, "\r\n")
}

// ParseValue is the inverse of FormatValue.
func ParseValue(s string) any {
	switch {
	case s == "NULL":
		return nil
	case s == "true":
		return true
	case s == "false":
		return false
	case intPattern.MatchString(s):
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	case floatPattern.MatchString(s):
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	case strings.HasPrefix(s, `"`):
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}

// ParseRecords reads the output of Record back into a header and rows.
// A leading title block and lines that are not "Column: value" pairs
// (notices) are skipped. The header is taken from the first record.
func ParseRecords(data []byte) (core.Header, []core.Row, error) {
	var (
		header  core.Header
		rows    []core.Row
		current core.Row
		names   []string
	)

	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		if header == nil {
			header = names
		} else if len(names) != len(header) {
			return fmt.Errorf("record %d has %d columns, expected %d", len(rows)+1, len(names), len(header))
		}
		rows = append(rows, current)
		current, names = nil, nil
		return nil
	}

	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	// a value never ends with ":", so this can only be a title
	if len(lines) > 1 && strings.HasSuffix(lines[0], ":") && lines[1] == RecordSeparator {
		lines = lines[2:]
	}

	for _, line := range lines {
		if line == RecordSeparator {
			if err := flush(); err != nil {
				return nil, nil, err
			}
			continue
		}

		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		names = append(names, name)
		current = append(current, ParseValue(value))
	}

	if err := flush(); err != nil {
		return nil, nil, err
	}

	return header, rows, nil
}
