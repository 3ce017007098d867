package gridfile

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/transform"
)

const bom = "\xEF\xBB\xBF"

func writeCSV(w io.Writer, grid Grid, opts Options) error {
	if opts.BOM {
		if _, err := io.WriteString(w, bom); err != nil {
			return err
		}
	}
	if opts.Encoding != nil {
		tw := transform.NewWriter(w, opts.Encoding.NewEncoder())
		if err := writeCSVRows(tw, grid, opts); err != nil {
			return err
		}
		return tw.Close()
	}
	return writeCSVRows(w, grid, opts)
}

func writeCSVRows(w io.Writer, grid Grid, opts Options) error {
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		if err := writeCSVRow(bw, stringRow(row), opts); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCSVRow(w *bufio.Writer, fields []string, opts Options) error {
	for i, field := range fields {
		if i > 0 {
			if _, err := w.WriteRune(opts.Delimiter); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quoteField(field, opts)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// quoteField encloses field in the quote character when it contains the
// delimiter, the quote, the escape character or whitespace. Quotes inside
// are doubled unless they follow the escape character.
func quoteField(field string, opts Options) string {
	special := string([]rune{opts.Delimiter, opts.Quote, '\n', '\r', '\t', ' '})
	if opts.Escape != NoEscape {
		special += string(opts.Escape)
	}
	if !strings.ContainsAny(field, special) {
		return field
	}

	var sb strings.Builder
	sb.Grow(len(field) + 2)
	sb.WriteRune(opts.Quote)
	escaped := false
	for _, r := range field {
		switch {
		case opts.Escape != NoEscape && r == opts.Escape:
			escaped = true
		case !escaped && r == opts.Quote:
			sb.WriteRune(opts.Quote)
		default:
			escaped = false
		}
		sb.WriteRune(r)
	}
	sb.WriteRune(opts.Quote)
	return sb.String()
}
