package gridfile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errInternalWrite = errors.New("write failed")

func TestQuoteField(t *testing.T) {
	t.Parallel()
	opts := Options{}.withDefaults()
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":            {in: "abc", want: "abc"},
		"empty":            {in: "", want: ""},
		"delimiter":        {in: "a,b", want: `"a,b"`},
		"tab":              {in: "a\tb", want: "\"a\tb\""},
		"carriage return":  {in: "a\rb", want: "\"a\rb\""},
		"escape alone":     {in: `C:\temp`, want: `"C:\temp"`},
		"escape then text": {in: `\x"`, want: `"\x"""`},
		"multibyte":        {in: "naïve", want: "naïve"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, quoteField(tt.in, opts))
		})
	}
}

func TestCellString(t *testing.T) {
	t.Parallel()
	ts := time.Date(2025, 1, 16, 8, 30, 0, 0, time.UTC)
	tests := map[string]struct {
		in   any
		want string
	}{
		"nil":      {in: nil, want: ""},
		"string":   {in: "x", want: "x"},
		"bytes":    {in: []byte("raw"), want: "raw"},
		"false":    {in: false, want: "false"},
		"int":      {in: 42, want: "42"},
		"int32":    {in: int32(-3), want: "-3"},
		"uint64":   {in: uint64(7), want: "7"},
		"float":    {in: 0.1, want: "0.1"},
		"float32":  {in: float32(1.5), want: "1.5"},
		"whole":    {in: 3.0, want: "3"},
		"time":     {in: ts, want: "2025-01-16T08:30:00Z"},
		"duration": {in: 2 * time.Second, want: "2s"},
		"uint8":    {in: uint8(9), want: "9"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cellString(tt.in))
		})
	}
}

// All positions written by one SetRows call share the same row.
func TestSetRowsSharesOneRow(t *testing.T) {
	t.Parallel()
	b := New()
	b.SetRows([]int{2, 5}, Row{"a", "b"})

	assert.Same(t, &b.rows[2][0], &b.rows[5][0])
	assert.Equal(t, 6, b.next)
}

func TestSetRowsEmptyPositions(t *testing.T) {
	t.Parallel()
	b := New()
	b.SetRows(nil, Row{"a"})
	assert.Empty(t, b.rows)
	assert.Equal(t, 0, b.next)
}

func TestNumericColumns(t *testing.T) {
	t.Parallel()
	rows := Grid{
		{1, "a", nil, 2.5},
		{2, 3, nil},
	}
	assert.Equal(t, []bool{true, false, false, true, false}, numericColumns(rows, 5))
}

func TestDecodeEntitiesLeavesNonStrings(t *testing.T) {
	t.Parallel()
	in := Row{"&lt;b&gt;", 5, nil, []byte("&amp;")}
	out := decodeEntities(in)
	assert.Equal(t, Row{"<b>", 5, nil, []byte("&amp;")}, out)
	assert.Equal(t, "&lt;b&gt;", in[0])
}

func TestWriteCSVRowsError(t *testing.T) {
	t.Parallel()
	err := writeCSVRows(&errWriterInternal{}, Grid{{"a", "b"}}, Options{}.withDefaults())
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestResolvePathNoDir(t *testing.T) {
	t.Parallel()
	path, err := resolvePath("out", "", ".csv")
	assert.NoError(t, err)
	assert.Equal(t, "out.csv", path)
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
