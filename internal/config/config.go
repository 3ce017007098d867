package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the gridexport run configuration.
type Config struct {
	Input      string  `ignored:"true"`
	Name       string  `ignored:"true"`
	Format     string  `envconfig:"FORMAT" default:"csv"`
	Dir        string  `envconfig:"DIR"`
	FontSize   float64 `envconfig:"FONT_SIZE" default:"13"`
	BOM        bool    `envconfig:"BOM" default:"false"`
	Delimiter  string  `envconfig:"DELIMITER" default:","`
	IndexStart bool    `ignored:"true"`
	IndexEnd   bool    `ignored:"true"`
	Debug      bool    `envconfig:"DEBUG" default:"false"`
}

// Load reads defaults from the environment (after loading envFile, when it
// exists) and overrides them with args.
func Load(envFile string, args []string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("GRIDEXPORT", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	fset := flag.NewFlagSet("gridexport", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.StringVar(&cfg.Input, "in", "-", "JSON input file, - for stdin")
	fset.StringVar(&cfg.Name, "name", "", "output file name, extension optional")
	fset.StringVar(&cfg.Format, "format", cfg.Format, "output format")
	fset.StringVar(&cfg.Dir, "dir", cfg.Dir, "output directory, created when missing")
	fset.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "spreadsheet font size")
	fset.BoolVar(&cfg.BOM, "bom", cfg.BOM, "write a UTF-8 byte order mark (csv)")
	fset.StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter, "field delimiter (csv)")
	fset.BoolVar(&cfg.IndexStart, "index-start", false, "add the index row before the data")
	fset.BoolVar(&cfg.IndexEnd, "index-end", false, "add the index row after the data")
	fset.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug logging to stderr")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Name == "" {
		return nil, errors.New("output name is required (-name)")
	}
	if len([]rune(cfg.Delimiter)) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	if cfg.Dir != "" {
		cfg.Dir = filepath.Clean(cfg.Dir)
	}
	return &cfg, nil
}

// DelimiterRune returns the configured delimiter.
func (c *Config) DelimiterRune() rune {
	return []rune(c.Delimiter)[0]
}
