package gridfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown renders a GitHub-flavored Markdown table. The first grid row
// becomes the table header. Columns holding only numbers are right-aligned.
func writeMarkdown(w io.Writer, grid Grid) error {
	if len(grid) == 0 {
		return nil
	}

	numCols := 0
	rows := make([][]string, len(grid))
	for i, row := range grid {
		numCols = max(numCols, len(row))
		rows[i] = stringRow(row)
		for j, cell := range rows[i] {
			rows[i][j] = escapePipes(cell)
		}
	}
	if numCols == 0 {
		return nil
	}

	// Minimum width 3 leaves room for alignment markers.
	widths := make([]int, numCols)
	for i := range widths {
		widths[i] = 3
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	right := numericColumns(grid[1:], numCols)

	if err := writeMarkdownRow(w, rows[0], widths, right); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		if right[i] {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, row, widths, right); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, right []bool) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padCell(cell, width, right[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func padCell(s string, width int, right bool) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

func escapePipes(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

// numericColumns reports, per column, whether every non-nil cell in rows is
// a number. Columns without any value are not numeric.
func numericColumns(rows Grid, numCols int) []bool {
	seen := make([]bool, numCols)
	numeric := make([]bool, numCols)
	for i := range numeric {
		numeric[i] = true
	}
	for _, row := range rows {
		for i, cell := range row {
			if cell == nil {
				continue
			}
			seen[i] = true
			if !isNumber(cell) {
				numeric[i] = false
			}
		}
	}
	for i := range numeric {
		numeric[i] = numeric[i] && seen[i]
	}
	return numeric
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
