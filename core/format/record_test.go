package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/format"
)

func TestRecord_Format(t *testing.T) {
	r := require.New(t)

	header := core.Header{"ProductID", "ProductName", "UnitPrice", "UnitsInStock"}
	rows := []core.Row{
		{int64(1), "Chai", 18.0, int64(39)},
		{int64(2), "Chang", 19.0, int64(17)},
	}

	out, err := format.NewRecord().Format(header, rows, &core.FormatterOptions{})
	r.NoError(err)

	expected := `ProductID: 1
ProductName: Chai
UnitPrice: 18.00
UnitsInStock: 39
------------------
ProductID: 2
ProductName: Chang
UnitPrice: 19.00
UnitsInStock: 17
------------------
`
	r.Equal(expected, string(out))
}

func TestRecord_FormatEmpty(t *testing.T) {
	r := require.New(t)

	header := core.Header{"ProductID", "ProductName"}

	out, err := format.NewRecord().Format(header, nil, &core.FormatterOptions{
		Title:       "Products in Category 42",
		EmptyNotice: "No products found in category 42",
	})
	r.NoError(err)
	r.Equal("Products in Category 42:\n------------------\nNo products found in category 42\n", string(out))

	// no records come back from an empty result
	_, rows, err := format.ParseRecords(out)
	r.NoError(err)
	r.Empty(rows)

	out, err = format.NewRecord().Format(header, nil, &core.FormatterOptions{})
	r.NoError(err)
	r.Equal(format.DefaultEmptyNotice+"\n", string(out))
}

func TestRecord_RoundTrip(t *testing.T) {
	r := require.New(t)

	header := core.Header{"id", "text", "price", "missing", "flag", "tricky", "quoted", "spaced", "multiline", "empty", "null text", "colon"}
	rows := []core.Row{
		{int64(1), "Chai", 18.0, nil, true, "12345", `"hi"`, " padded ", "two\nlines", "", "NULL", "a: b"},
		{int64(-7), "Côte de Blaye", 263.5, nil, false, "0.125", "true", "x", "y", "z", "null", "::"},
		{int64(0), "Tofu", 0.125, "NULL?", false, "-3", "false", "\t", "a\rb", "-", "1.5e3", ": "},
	}

	out, err := format.NewRecord().Format(header, rows, &core.FormatterOptions{Title: "Everything"})
	r.NoError(err)

	gotHeader, gotRows, err := format.ParseRecords(out)
	r.NoError(err)
	r.Equal(header, gotHeader)
	r.Equal(rows, gotRows)
}

func TestRecord_RoundTripTitleWithColon(t *testing.T) {
	r := require.New(t)

	header := core.Header{"actor_id", "last_name"}
	rows := []core.Row{
		{int64(1), "A: B"},
		{int64(2), "ends with:"},
	}

	out, err := format.NewRecord().Format(header, rows, &core.FormatterOptions{Title: "Actors with last name 'A: B'"})
	r.NoError(err)

	gotHeader, gotRows, err := format.ParseRecords(out)
	r.NoError(err)
	r.Equal(header, gotHeader)
	r.Equal(rows, gotRows)

	// a single column record starting the output is not mistaken for a title
	out, err = format.NewRecord().Format(core.Header{"note"}, []core.Row{{"x:"}}, &core.FormatterOptions{})
	r.NoError(err)

	_, gotRows, err = format.ParseRecords(out)
	r.NoError(err)
	r.Equal([]core.Row{{"x:"}}, gotRows)
}

func TestParseRecords_MismatchedRecords(t *testing.T) {
	input := "a: 1\nb: 2\n------------------\na: 3\n------------------\n"

	_, _, err := format.ParseRecords([]byte(input))
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		give any
		want string
	}{
		{nil, "NULL"},
		{int64(42), "42"},
		{42, "42"},
		{18.0, "18.00"},
		{19.5, "19.50"},
		{0.125, "0.125"},
		{true, "true"},
		{"Beverages", "Beverages"},
		{"42", `"42"`},
		{"note:", `"note:"`},
		{"", `""`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, format.FormatValue(tt.give))
	}
}
