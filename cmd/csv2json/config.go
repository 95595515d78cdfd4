package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	// Source is the path to the source CSV file (positional argument).
	Source string

	// Output is the destination JSON path. Empty means the source path with its
	// extension replaced by .json.
	Output string
}

func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New("usage: csv2json [-output path] <source.csv>")
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Output, "output", "", "Path to the output JSON file (default: <source stem>.json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() > 0 {
		cfg.Source = filepath.Clean(fs.Arg(0))
	}
	if cfg.Output != "" {
		cfg.Output = filepath.Clean(cfg.Output)
	}
	return cfg, nil
}
