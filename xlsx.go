package gridfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

func writeXLSX(w io.Writer, grid Grid, merges []string, opts Options) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: close workbook: %w", ErrRender, cerr)
		}
	}()

	sheet := f.GetSheetName(0)
	if opts.Sheet != sheet {
		if err := f.SetSheetName(sheet, opts.Sheet); err != nil {
			return fmt.Errorf("%w: rename sheet: %w", ErrRender, err)
		}
		sheet = opts.Sheet
	}

	cols := 0
	for i, row := range grid {
		if len(row) == 0 {
			continue
		}
		cols = max(cols, len(row))
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}
		values := []any(row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrRender, i+1, err)
		}
	}

	if err := applyFontSize(f, sheet, cols, opts.FontSize); err != nil {
		return err
	}

	for _, region := range merges {
		topLeft, bottomRight, ok := strings.Cut(region, ":")
		if !ok {
			bottomRight = topLeft
		}
		if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
			return fmt.Errorf("%w: merge %q: %w", ErrRender, region, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("%w: write workbook: %w", ErrRender, err)
	}
	return nil
}

// applyFontSize styles every used column with the workbook's default font
// at size. Column styles also restyle the cells already written.
func applyFontSize(f *excelize.File, sheet string, cols int, size float64) error {
	if cols == 0 {
		return nil
	}
	family, err := f.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("%w: default font: %w", ErrRender, err)
	}
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: family, Size: size},
	})
	if err != nil {
		return fmt.Errorf("%w: font style: %w", ErrRender, err)
	}
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	if err := f.SetColStyle(sheet, "A:"+last, style); err != nil {
		return fmt.Errorf("%w: column style: %w", ErrRender, err)
	}
	return nil
}
