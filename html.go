package gridfile

import (
	"fmt"
	"html"
	"io"
)

// writeHTML renders a <table>. Header rows go to <thead> as <th> cells,
// footer rows to <tfoot>. Cell text is escaped.
func writeHTML(w io.Writer, head, body, foot Grid) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	sections := []struct {
		tag, cell string
		rows      Grid
	}{
		{"thead", "th", head},
		{"tbody", "td", body},
		{"tfoot", "td", foot},
	}
	for _, s := range sections {
		if len(s.rows) == 0 && s.tag != "tbody" {
			continue
		}
		if err := writeHTMLSection(w, s.tag, s.cell, s.rows); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLSection(w io.Writer, tag, cell string, rows Grid) error {
	if _, err := fmt.Fprintf(w, "  <%s>\n", tag); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, v := range row {
			style := ""
			if isNumber(v) {
				style = ` style="text-align: right"`
			}
			if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", cell, style, html.EscapeString(cellString(v)), cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  </%s>\n", tag)
	return err
}
