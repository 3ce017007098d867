package gridfile

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, grid Grid) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, row := range plainGrid(grid) {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
