package meeting

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrPricingNotFound is returned by LoadRates when no record in the price file
// matches the requested model.
var ErrPricingNotFound = errors.New("pricing not found in price file")

// PriceRecord is one row of a price file: a JSON array of objects with at least
// a model name and per-1000-token input/output rates.
type PriceRecord struct {
	Provider string     `json:"API Provider,omitempty"`
	Model    string     `json:"Model"`
	Input    priceValue `json:"Input"`
	Output   priceValue `json:"Output"`
}

// priceValue accepts both bare numbers and quoted numeric strings; exported
// price sheets mix the two.
type priceValue float64

func (p *priceValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("parse price value %s: %w", string(b), err)
	}
	*p = priceValue(f)
	return nil
}

// LoadRates reads a price file and scans it for the record matching model.
// A missing file surfaces as a not-found error before any parsing; a price file
// without the model fails with ErrPricingNotFound rather than defaulting to
// zero-cost accounting.
func LoadRates(path string, model string) (Rates, error) {
	if path == "" {
		return Rates{}, errors.New("LoadRates: path is empty")
	}
	if model == "" {
		return Rates{}, errors.New("LoadRates: model is empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Rates{}, fmt.Errorf("LoadRates: read price file: %w", err)
	}

	var records []PriceRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return Rates{}, fmt.Errorf("LoadRates: unmarshal price file: %w", err)
	}

	for _, rec := range records {
		if rec.Model == model {
			return Rates{
				Input:  float64(rec.Input),
				Output: float64(rec.Output),
			}, nil
		}
	}
	return Rates{}, fmt.Errorf("LoadRates: model %q: %w", model, ErrPricingNotFound)
}
