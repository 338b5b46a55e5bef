package pggname

import (
	"fmt"
	"os"

	"github.com/pangenome/pggname/digest"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration surface of the naming pipeline.
//
// Only the hash variant and truncation length are configurable; the
// identifier universe is always resolved automatically and cannot be
// overridden.
type Config struct {
	// Hash is the hash variant name (e.g. "sha256", "sha512/224").
	// Empty selects sha256.
	Hash string `yaml:"hash,omitempty"`

	// Length is the truncated digest length in bytes.
	// 0 selects the variant's natural length.
	Length int `yaml:"length,omitempty"`

	// Workers bounds the goroutines used by the parallel sorting stages.
	// 0 selects runtime.NumCPU().
	Workers int `yaml:"workers,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that the configured variant and truncation length are
// acceptable before any streaming begins.
func (c *Config) Validate() error {
	variant := digest.SHA256
	if c.Hash != "" {
		var err error
		variant, err = digest.ParseVariant(c.Hash)
		if err != nil {
			return err
		}
	}
	if _, err := digest.NewPipeline(variant, c.Length); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", digest.ErrInvalidConfiguration, c.Workers)
	}
	return nil
}

// apply merges file values into cfg for every field the file sets.
// Called before explicit options, which take precedence.
func (c *Config) apply(cfg *namerConfig) error {
	if c.Hash != "" {
		variant, err := digest.ParseVariant(c.Hash)
		if err != nil {
			return err
		}
		cfg.variant = variant
	}
	if c.Length > 0 {
		cfg.length = c.Length
	}
	if c.Workers > 0 {
		cfg.workers = c.Workers
	}
	return nil
}
