package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"genai-cost-estimator/meeting"
)

type Config struct {
	// ConfigFile is an optional YAML file supplying defaults for the other
	// fields. Explicitly-set flags win over file values.
	ConfigFile string

	Prices     string
	Transcript string

	// Model is the generation model identifier sent to the service.
	Model string

	// PriceModel is the model name looked up in the price file. Empty means
	// the same as Model.
	PriceModel string

	ChunkSize    int
	ChunkOverlap int

	APIKey string
}

func (c Config) Validate() error {
	if c.Prices == "" {
		return errors.New("missing -prices")
	}
	if c.Transcript == "" {
		return errors.New("missing -transcript")
	}
	if c.Model == "" {
		return errors.New("missing -model")
	}
	if c.ChunkSize <= 0 {
		return errors.New("chunk-size must be > 0")
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return errors.New("chunk-overlap must be in [0, chunk-size)")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Prices:       "llm-prices.json",
		Model:        "gpt-5-mini",
		ChunkSize:    meeting.DefaultChunkSize,
		ChunkOverlap: meeting.DefaultChunkOverlap,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.ConfigFile, "config", "", "Optional YAML config file; explicit flags override its values")
	fs.StringVar(&cfg.Prices, "prices", cfg.Prices, "Path to the price table JSON file")
	fs.StringVar(&cfg.Transcript, "transcript", "", "Path to the meeting transcript file")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Generation model to use (e.g. gpt-5-mini)")
	fs.StringVar(&cfg.PriceModel, "price-model", "", "Model name to look up in the price file (default: -model)")
	fs.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "Max transcript chunk length in characters")
	fs.IntVar(&cfg.ChunkOverlap, "chunk-overlap", cfg.ChunkOverlap, "Character overlap between consecutive chunks")
	fs.StringVar(&cfg.APIKey, "api-key", "", "API key (overrides OPENAI_API_KEY env var)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.ConfigFile != "" {
		fc, err := loadFileConfig(filepath.Clean(cfg.ConfigFile))
		if err != nil {
			return Config{}, err
		}
		applyFileConfig(&cfg, fc, set)
	}

	if cfg.PriceModel == "" {
		cfg.PriceModel = cfg.Model
	}
	if cfg.Prices != "" {
		cfg.Prices = filepath.Clean(cfg.Prices)
	}
	if cfg.Transcript != "" {
		cfg.Transcript = filepath.Clean(cfg.Transcript)
	}
	return cfg, nil
}

// fileConfig is the YAML shape of -config.
type fileConfig struct {
	Prices       string `yaml:"prices"`
	Transcript   string `yaml:"transcript"`
	Model        string `yaml:"model"`
	PriceModel   string `yaml:"price_model"`
	ChunkSize    int    `yaml:"chunk_size"`
	ChunkOverlap int    `yaml:"chunk_overlap"`
}

func loadFileConfig(path string) (fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read -config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("unmarshal -config: %w", err)
	}
	return fc, nil
}

// applyFileConfig fills cfg from the file for every flag the user did not set
// explicitly on the command line.
func applyFileConfig(cfg *Config, fc fileConfig, set map[string]bool) {
	if !set["prices"] && fc.Prices != "" {
		cfg.Prices = fc.Prices
	}
	if !set["transcript"] && fc.Transcript != "" {
		cfg.Transcript = fc.Transcript
	}
	if !set["model"] && fc.Model != "" {
		cfg.Model = fc.Model
	}
	if !set["price-model"] && fc.PriceModel != "" {
		cfg.PriceModel = fc.PriceModel
	}
	if !set["chunk-size"] && fc.ChunkSize != 0 {
		cfg.ChunkSize = fc.ChunkSize
	}
	if !set["chunk-overlap"] && fc.ChunkOverlap != 0 {
		cfg.ChunkOverlap = fc.ChunkOverlap
	}
}
