package gridfile

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, grid Grid, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", opts.Indent)
	return enc.Encode(plainGrid(grid))
}
