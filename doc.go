// Package gridfile accumulates tabular data in memory and writes it to
// export files.
//
// A [Builder] holds data rows keyed by position, optional header and footer
// rows, an optional index list and spreadsheet merge regions. Callers fill it
// row by row (or from a query or a slice of records) and then export:
//
//	b := gridfile.New()
//	b.SetHeader(gridfile.Row{"Name", "Price &amp; VAT"})
//	b.AddRow(gridfile.Row{"Widget", 9.99})
//	path, err := b.ExportCSV("report", "exports/2025", gridfile.Options{BOM: true})
//
// # Rows
//
// [Builder.AddRow] appends at the next position. [Builder.SetRow] writes any
// position, [Builder.RemoveRow] deletes one and leaves a gap; gaps are skipped
// on export. [Builder.SetRows] is a broadcast: every listed position receives
// the same row.
//
// [Builder.Reset], [LoadRecords], [Builder.LoadRows] and [Builder.LoadQuery]
// replace only the data rows. Header, footer, index list and merge regions
// stay until they are set again.
//
// # Assembly
//
// [Builder.Assemble] produces the grid every format renders:
//
//   - header rows, HTML entities decoded
//   - the index list as one row, if [Layout].IndexAtStart
//   - data rows in position order
//   - the index list again, if [Layout].IndexAtEnd
//   - footer rows, HTML entities decoded
//
// # Formats
//
// [Builder.Write] renders to an [io.Writer]; [Builder.Export] writes a file,
// appending the format's extension and creating the directory when needed.
//
//   - [CSV], [TSV]: delimiter, quote and escape characters, optional UTF-8
//     byte order mark and legacy charset
//   - [XLSX]: one worksheet, merge regions, font size
//   - [JSON], [JSONL], [YAML]: arrays of rows
//   - [Markdown], [HTML]: tables for previews and mail bodies
//
// # Errors
//
// Filesystem errors are wrapped and returned as is. The package exports
// sentinel errors for the rest:
//
//   - [ErrUnsupportedFormat]: unknown format
//   - [ErrRender]: the spreadsheet could not be built
package gridfile
