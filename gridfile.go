package gridfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrRender            = errors.New("render failed")
)

// Format represents an output file format.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	XLSX     Format = "xlsx"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	HTML     Format = "html"
)

var formats = []Format{CSV, TSV, XLSX, JSON, JSONL, YAML, Markdown, HTML}

var extensions = map[Format]string{
	CSV:      ".csv",
	TSV:      ".tsv",
	XLSX:     ".xlsx",
	JSON:     ".json",
	JSONL:    ".jsonl",
	YAML:     ".yaml",
	Markdown: ".md",
	HTML:     ".html",
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Extension returns the canonical file extension, including the leading dot.
// Unknown formats return "".
func (f Format) Extension() string { return extensions[f] }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string. The file extension of a format
// (with or without the dot) is accepted as well.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s || f.Extension() == s || f.Extension() == "."+s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// NoEscape disables the CSV escape character.
const NoEscape rune = -1

const (
	defaultFontSize = 13
	defaultSheet    = "Sheet1"
	defaultIndent   = "    "
)

// Layout selects where the index row is placed in the assembled grid.
type Layout struct {
	IndexAtStart bool
	IndexAtEnd   bool
}

// Options controls rendering. The zero value is ready to use; each format
// reads only the fields it understands.
type Options struct {
	Layout

	// Delimiter separates CSV fields. Default: comma. TSV always uses a tab.
	Delimiter rune
	// Quote encloses CSV fields. Default: double quote.
	Quote rune
	// Escape prevents the following quote from being doubled.
	// Default: backslash. Use NoEscape to disable.
	Escape rune
	// BOM writes the UTF-8 byte order mark before the first CSV row.
	BOM bool
	// Encoding transcodes CSV output to a legacy charset. Nil means UTF-8.
	Encoding encoding.Encoding

	// FontSize is the spreadsheet font size in points. Default: 13.
	FontSize float64
	// Sheet names the worksheet. Default: Sheet1.
	Sheet string

	// Indent is the JSON indentation unit. Default: four spaces.
	// YAML uses its length.
	Indent string
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Quote == 0 {
		o.Quote = '"'
	}
	if o.Escape == 0 {
		o.Escape = '\\'
	}
	if o.FontSize <= 0 {
		o.FontSize = defaultFontSize
	}
	if o.Sheet == "" {
		o.Sheet = defaultSheet
	}
	if o.Indent == "" {
		o.Indent = defaultIndent
	}
	return o
}

// Write assembles the grid and renders it to w in format f.
func (b *Builder) Write(w io.Writer, f Format, opts Options) error {
	opts = opts.withDefaults()
	switch f {
	case CSV:
		return writeCSV(w, b.Assemble(opts.Layout), opts)
	case TSV:
		opts.Delimiter = '\t'
		return writeCSV(w, b.Assemble(opts.Layout), opts)
	case XLSX:
		return writeXLSX(w, b.Assemble(opts.Layout), b.merges, opts)
	case JSON:
		return writeJSON(w, b.Assemble(opts.Layout), opts)
	case JSONL:
		return writeJSONL(w, b.Assemble(opts.Layout))
	case YAML:
		return writeYAML(w, b.Assemble(opts.Layout), opts)
	case Markdown:
		return writeMarkdown(w, b.Assemble(opts.Layout))
	case HTML:
		head, body, foot := b.sections(opts.Layout)
		return writeHTML(w, head, body, foot)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders the grid in format f and returns the bytes.
func (b *Builder) Marshal(f Format, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Write(&buf, f, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export renders the grid in format f and writes it to name inside dir,
// replacing any existing file. The format's extension is appended to name
// when missing, and dir is created (with parents) when it does not exist.
// An empty dir writes relative to the working directory. Export returns the
// resolved path.
//
// The file is written in one call; a failure part-way may leave a truncated
// file behind.
func (b *Builder) Export(f Format, name, dir string, opts Options) (string, error) {
	ext := f.Extension()
	if ext == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	path, err := resolvePath(name, dir, ext)
	if err != nil {
		return "", err
	}
	data, err := b.Marshal(f, opts)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	b.log().Debug("grid exported",
		"format", f.String(),
		"path", path,
		"rows", len(b.rows),
		"bytes", len(data),
	)
	return path, nil
}

// ExportCSV writes the grid as delimited text. See [Builder.Export].
func (b *Builder) ExportCSV(name, dir string, opts Options) (string, error) {
	return b.Export(CSV, name, dir, opts)
}

// ExportXLSX writes the grid as a spreadsheet. See [Builder.Export].
func (b *Builder) ExportXLSX(name, dir string, opts Options) (string, error) {
	return b.Export(XLSX, name, dir, opts)
}

// ExportJSON writes the grid as pretty-printed JSON. See [Builder.Export].
func (b *Builder) ExportJSON(name, dir string, opts Options) (string, error) {
	return b.Export(JSON, name, dir, opts)
}

func resolvePath(name, dir, ext string) (string, error) {
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	if dir == "" {
		return name, nil
	}
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}
	return filepath.Join(dir, name), nil
}
