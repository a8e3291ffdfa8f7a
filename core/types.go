package core

type (
	// FormatterOptions provide various options for formatters
	FormatterOptions struct {
		// EmptyNotice is printed instead of records when there are no rows.
		EmptyNotice string
		// Title is an optional heading printed above the records.
		Title string
	}

	// Formatter converts header and rows to bytes
	Formatter interface {
		Format(header Header, rows []Row, opts *FormatterOptions) ([]byte, error)
	}
)

type (
	// Row and Header are attributes of ResultStream iterator
	Row    []any
	Header []string

	// ResultStream is a result from executed query and has a form of an iterator
	ResultStream interface {
		Header() Header
		Next() (Row, error)
		HasNext() bool
		Close()
	}
)

// Logger is the logging surface used across the console.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// NopLogger returns a logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}
