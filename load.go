package gridfile

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Record is an ordered set of field values, such as a row type read from a
// database. Values must return the fields in column order.
type Record interface {
	Values() []any
}

// LoadRecords replaces all row data of b with one row per record, copying
// the record's values in order. Header, footer, index list and merge
// regions are kept.
func LoadRecords[R Record](b *Builder, records []R) {
	b.Reset()
	for _, rec := range records {
		b.AddRow(rec.Values())
	}
	b.log().Debug("records loaded", "rows", len(records))
}

// LoadQuery runs query against db and replaces all row data with the result
// set, one row per result row in column order. Byte-slice column values are
// stored as strings. The row data is left untouched when the query or a scan
// fails.
func (b *Builder) LoadQuery(ctx context.Context, db sqlx.QueryerContext, query string, args ...any) error {
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var loaded []Row
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return fmt.Errorf("scan row %d: %w", len(loaded), err)
		}
		for i, v := range values {
			if raw, ok := v.([]byte); ok {
				values[i] = string(raw)
			}
		}
		loaded = append(loaded, values)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	b.LoadRows(loaded)
	b.log().Debug("query loaded", "rows", len(loaded))
	return nil
}
