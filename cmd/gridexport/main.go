// Command gridexport turns a JSON grid document into an export file.
//
// Input:
//
//	{"header": [["Name", "Qty"]], "rows": [["a", 1]], "footer": [], "index": [], "merge": ["A1:B1"]}
//
// The result is printed to stdout as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bjaus/gridfile"
	"github.com/bjaus/gridfile/internal/config"
)

type Output struct {
	Success    bool   `json:"success"`
	OutputFile string `json:"output_file,omitempty"`
	Error      string `json:"error,omitempty"`
	Duration   string `json:"duration"`
	RowCount   int    `json:"row_count,omitempty"`
}

type document struct {
	Header []gridfile.Row `json:"header"`
	Footer []gridfile.Row `json:"footer"`
	Index  gridfile.Row   `json:"index"`
	Merge  []string       `json:"merge"`
	Rows   []gridfile.Row `json:"rows"`
}

func main() {
	start := time.Now()

	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		emitJSON(Output{
			Success:  false,
			Error:    fmt.Sprintf("config: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(2)
	}

	path, rows, err := run(cfg, os.Stdin)
	if err != nil {
		emitJSON(Output{
			Success:  false,
			Error:    fmt.Sprintf("export: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(1)
	}

	emitJSON(Output{
		Success:    true,
		OutputFile: path,
		RowCount:   rows,
		Duration:   time.Since(start).String(),
	})
}

func run(cfg *config.Config, stdin io.Reader) (string, int, error) {
	format, err := gridfile.ParseFormat(cfg.Format)
	if err != nil {
		return "", 0, err
	}

	doc, err := readDocument(cfg.Input, stdin)
	if err != nil {
		return "", 0, err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	b := gridfile.New(gridfile.WithLogger(logger))
	b.SetHeader(doc.Header...)
	b.SetFooter(doc.Footer...)
	b.SetIndexList(doc.Index)
	b.SetMergeRegions(doc.Merge...)
	b.LoadRows(doc.Rows)

	path, err := b.Export(format, cfg.Name, cfg.Dir, gridfile.Options{
		Layout: gridfile.Layout{
			IndexAtStart: cfg.IndexStart,
			IndexAtEnd:   cfg.IndexEnd,
		},
		Delimiter: cfg.DelimiterRune(),
		BOM:       cfg.BOM,
		FontSize:  cfg.FontSize,
	})
	if err != nil {
		return "", 0, err
	}
	return path, b.Len(), nil
}

func readDocument(input string, stdin io.Reader) (*document, error) {
	var r io.Reader = stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var doc document
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", input, err)
	}
	for _, rows := range [][]gridfile.Row{doc.Header, doc.Footer, doc.Rows, {doc.Index}} {
		for _, row := range rows {
			numbers(row)
		}
	}
	return &doc, nil
}

// numbers replaces json.Number cells with int64 or float64 so the
// spreadsheet stores numeric cells.
func numbers(row gridfile.Row) {
	for i, cell := range row {
		n, ok := cell.(json.Number)
		if !ok {
			continue
		}
		if v, err := n.Int64(); err == nil {
			row[i] = v
		} else if v, err := n.Float64(); err == nil {
			row[i] = v
		}
	}
}

func emitJSON(out Output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("write result: %v", err)
	}
}
