package gridfile

import (
	"html"
	"io"
	"log/slog"
	"maps"
	"slices"
)

// Row is an ordered sequence of scalar cell values.
type Row []any

// Grid is the ordered sequence of rows handed to a renderer.
type Grid []Row

// Builder accumulates rows together with an optional header, footer, index
// row and merge regions, and renders them to files.
//
// Rows are stored by integer position. Removing a row leaves a gap that is
// skipped on export. Header, footer, index list and merge regions survive
// [Builder.Reset] and every export.
//
// A Builder is not safe for concurrent use. The zero value is ready to use.
type Builder struct {
	rows   map[int]Row
	next   int
	header []Row
	footer []Row
	index  Row
	merges []string
	logger *slog.Logger
}

// BuilderOption configures a [Builder].
type BuilderOption func(*Builder)

// WithLogger sets the logger used for export and load events.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = l }
}

// New returns an empty Builder.
func New(opts ...BuilderOption) *Builder {
	b := &Builder{rows: make(map[int]Row)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (b *Builder) log() *slog.Logger {
	if b.logger == nil {
		return discard
	}
	return b.logger
}

func (b *Builder) store(pos int, row Row) {
	if b.rows == nil {
		b.rows = make(map[int]Row)
	}
	b.rows[pos] = row
	if pos >= b.next {
		b.next = pos + 1
	}
}

// AddRow appends row at the next position.
func (b *Builder) AddRow(row Row) {
	b.store(b.next, slices.Clone(row))
}

// AddRows appends rows in order.
func (b *Builder) AddRows(rows ...Row) {
	for _, row := range rows {
		b.AddRow(row)
	}
}

// SetRow stores row at pos, replacing any row already there. Any position
// is accepted, including negative ones.
func (b *Builder) SetRow(pos int, row Row) {
	b.store(pos, slices.Clone(row))
}

// SetRows stores the same row at every position in positions. It is a
// broadcast, not a per-position assignment: all positions end up sharing one
// copy of row. Call [Builder.SetRow] per position to store distinct rows.
func (b *Builder) SetRows(positions []int, row Row) {
	shared := slices.Clone(row)
	for _, pos := range positions {
		b.store(pos, shared)
	}
}

// LoadRows replaces all row data with rows, numbered from zero.
func (b *Builder) LoadRows(rows []Row) {
	b.Reset()
	b.AddRows(rows...)
}

// RemoveRow deletes the row at pos. Removing a missing position is a no-op.
func (b *Builder) RemoveRow(pos int) {
	delete(b.rows, pos)
}

// RemoveRows deletes the rows at positions.
func (b *Builder) RemoveRows(positions ...int) {
	for _, pos := range positions {
		delete(b.rows, pos)
	}
}

// Reset clears the row data. Header, footer, index list and merge regions
// are kept.
func (b *Builder) Reset() {
	b.rows = make(map[int]Row)
	b.next = 0
}

// Data returns a copy of the row data keyed by position, gaps included.
func (b *Builder) Data() map[int]Row {
	out := make(map[int]Row, len(b.rows))
	for pos, row := range b.rows {
		out[pos] = slices.Clone(row)
	}
	return out
}

// Positions returns the positions holding a row, in ascending order.
func (b *Builder) Positions() []int {
	return slices.Sorted(maps.Keys(b.rows))
}

// Len returns the number of stored rows.
func (b *Builder) Len() int { return len(b.rows) }

// IndexList returns a copy of the index list.
func (b *Builder) IndexList() Row { return slices.Clone(b.index) }

// SetIndexList replaces the index list. Its length is not checked against
// the row count.
func (b *Builder) SetIndexList(index Row) { b.index = slices.Clone(index) }

// Header returns a copy of the header rows, undecoded.
func (b *Builder) Header() []Row { return cloneRows(b.header) }

// SetHeader replaces the header rows.
func (b *Builder) SetHeader(rows ...Row) { b.header = cloneRows(rows) }

// Footer returns a copy of the footer rows, undecoded.
func (b *Builder) Footer() []Row { return cloneRows(b.footer) }

// SetFooter replaces the footer rows.
func (b *Builder) SetFooter(rows ...Row) { b.footer = cloneRows(rows) }

// MergeRegions returns a copy of the merge regions.
func (b *Builder) MergeRegions() []string { return slices.Clone(b.merges) }

// SetMergeRegions replaces the merge regions. A region is a cell range such
// as "A1:C1"; only the spreadsheet format uses them.
func (b *Builder) SetMergeRegions(regions ...string) { b.merges = slices.Clone(regions) }

// Assemble builds the export grid: decoded header rows, the index row if
// l.IndexAtStart, the data rows in position order, the index row if
// l.IndexAtEnd, then decoded footer rows. The result shares no memory with
// the builder.
func (b *Builder) Assemble(l Layout) Grid {
	head, body, foot := b.sections(l)
	grid := make(Grid, 0, len(head)+len(body)+len(foot))
	grid = append(grid, head...)
	grid = append(grid, body...)
	return append(grid, foot...)
}

// sections splits the assembled grid into header, body and footer so HTML
// can tag them. The index rows belong to the body.
func (b *Builder) sections(l Layout) (head, body, foot Grid) {
	for _, row := range b.header {
		head = append(head, decodeEntities(row))
	}
	if l.IndexAtStart {
		body = append(body, append(Row{}, b.index...))
	}
	for _, pos := range b.Positions() {
		body = append(body, append(Row{}, b.rows[pos]...))
	}
	if l.IndexAtEnd {
		body = append(body, append(Row{}, b.index...))
	}
	for _, row := range b.footer {
		foot = append(foot, decodeEntities(row))
	}
	return head, body, foot
}

// decodeEntities replaces HTML entities in string cells, e.g. "&amp;"
// becomes "&". Header and footer text often arrives HTML-encoded; data rows
// are never decoded.
func decodeEntities(row Row) Row {
	out := make(Row, len(row))
	for i, cell := range row {
		if s, ok := cell.(string); ok {
			out[i] = html.UnescapeString(s)
			continue
		}
		out[i] = cell
	}
	return out
}

func cloneRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}
