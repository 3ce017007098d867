package gridfile

import (
	"fmt"
	"strconv"
	"time"
)

// cellString renders a cell for the text formats.
func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case []byte:
		return string(c)
	case bool:
		return strconv.FormatBool(c)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case int32:
		return strconv.FormatInt(int64(c), 10)
	case uint64:
		return strconv.FormatUint(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case time.Time:
		return c.Format(time.RFC3339)
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

func stringRow(row Row) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = cellString(cell)
	}
	return out
}

// plainGrid prepares a grid for the structured encoders: byte slices become
// strings instead of base64.
func plainGrid(grid Grid) [][]any {
	out := make([][]any, len(grid))
	for i, row := range grid {
		cells := make([]any, len(row))
		for j, cell := range row {
			if raw, ok := cell.([]byte); ok {
				cell = string(raw)
			}
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}
