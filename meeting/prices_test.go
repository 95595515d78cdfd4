package meeting

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePriceFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write price file: %v", err)
	}
	return path
}

func TestLoadRates_ExactValues(t *testing.T) {
	t.Parallel()

	path := writePriceFile(t, `[
		{"API Provider": "Google", "Model": "Gemini 1.5 Pro", "Input": 0.075, "Output": 0.30},
		{"API Provider": "OpenAI", "Model": "gpt-5-mini", "Input": 0.25, "Output": 2.0}
	]`)

	rates, err := LoadRates(path, "Gemini 1.5 Pro")
	if err != nil {
		t.Fatalf("LoadRates: %v", err)
	}
	if rates.Input != 0.075 {
		t.Fatalf("Input=%v, want 0.075", rates.Input)
	}
	if rates.Output != 0.30 {
		t.Fatalf("Output=%v, want 0.30", rates.Output)
	}
}

func TestLoadRates_QuotedNumericValues(t *testing.T) {
	t.Parallel()

	path := writePriceFile(t, `[{"Model": "m", "Input": "1.25", "Output": "10"}]`)

	rates, err := LoadRates(path, "m")
	if err != nil {
		t.Fatalf("LoadRates: %v", err)
	}
	if rates.Input != 1.25 || rates.Output != 10 {
		t.Fatalf("rates=%+v, want {1.25 10}", rates)
	}
}

func TestLoadRates_ModelMissing(t *testing.T) {
	t.Parallel()

	path := writePriceFile(t, `[{"Model": "Wrong Model", "Input": 1.0, "Output": 1.0}]`)

	_, err := LoadRates(path, "Gemini 1.5 Pro")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrPricingNotFound) {
		t.Fatalf("err=%v, want ErrPricingNotFound", err)
	}
	if !strings.Contains(err.Error(), "Gemini 1.5 Pro") {
		t.Fatalf("err=%v, want it to name the missing model", err)
	}
}

func TestLoadRates_FileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadRates(filepath.Join(t.TempDir(), "nonexistent.json"), "m")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v, want fs.ErrNotExist", err)
	}
}

func TestLoadRates_MalformedFile(t *testing.T) {
	t.Parallel()

	path := writePriceFile(t, `{"not": "an array"}`)
	if _, err := LoadRates(path, "m"); err == nil {
		t.Fatalf("expected error")
	}
}
