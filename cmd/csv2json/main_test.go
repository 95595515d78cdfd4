package main

import (
	"flag"
	"testing"
)

func TestParseFlags_PositionalSourceAndOutput(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("csv2json", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-output", "out/data.json", "data/input.csv"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Source != "data/input.csv" {
		t.Fatalf("Source=%q", cfg.Source)
	}
	if cfg.Output != "out/data.json" {
		t.Fatalf("Output=%q", cfg.Output)
	}
}

func TestParseFlags_SourceOnly(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("csv2json", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"input.csv"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Source != "input.csv" || cfg.Output != "" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := (Config{}).Validate(); err == nil {
		t.Fatalf("expected error for missing source")
	}
	if err := (Config{Source: "in.csv"}).Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
