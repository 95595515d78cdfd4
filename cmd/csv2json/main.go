package main

import (
	"flag"
	"fmt"
	"os"

	"genai-cost-estimator/tabular"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	// Missing source is reported before any parsing is attempted.
	if _, err := os.Stat(cfg.Source); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("source file not found: %w", err).Error())
		os.Exit(1)
	}

	out := cfg.Output
	if out == "" {
		out = tabular.DefaultOutputPath(cfg.Source)
	}

	n, err := tabular.Convert(cfg.Source, out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "rows=%d out=%s\n", n, out)
}
