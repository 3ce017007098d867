package gridfile

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, grid Grid, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(len(opts.Indent))
	if err := enc.Encode(plainGrid(grid)); err != nil {
		return err
	}
	return enc.Close()
}
