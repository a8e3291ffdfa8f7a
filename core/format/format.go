// Package format holds the interchangeable result formatters.
package format

import (
	"fmt"

	"github.com/kndndrj/dbconsole/core"
)

// Names lists the formatters known to New.
var Names = []string{"record", "decorated", "table", "json", "csv"}

// New returns the formatter registered under name.
func New(name string) (core.Formatter, error) {
	switch name {
	case "record", "":
		return NewRecord(), nil
	case "decorated":
		return NewDecorated(), nil
	case "table":
		return NewTable(), nil
	case "json":
		return NewJSON(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("format %q is not supported", name)
	}
}
