// Package config loads the run file that drives headless training.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Default and by Validate for unset optional fields.
const (
	DefaultSteps        = 1000
	DefaultLearningRate = 0.01
	DefaultLogEvery     = 100
	DefaultEvalSamples  = 256
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Network      string  `yaml:"network"`       // Path to the layer config file
	Steps        int     `yaml:"steps"`         // Number of TrainStep calls
	LearningRate float64 `yaml:"learning_rate"` // Gradient descent step size
	L1           float64 `yaml:"l1"`            // L1 coefficient, 0 disables
	Seed         int64   `yaml:"seed"`          // Seeds weights and samples; 0 picks a random seed
	LogEvery     int     `yaml:"log_every"`     // Steps between progress lines
	EvalSamples  int     `yaml:"eval_samples"`  // Held-out samples scored after training
	Workers      int     `yaml:"workers"`       // Goroutines for evaluation; 0 uses every CPU
}

// Overrides captures CLI supplied values. Zero values leave the file's value.
type Overrides struct {
	Network      string
	Steps        int
	LearningRate float64
	L1           float64
	Seed         int64
	LogEvery     int
}

// Default returns a config with every optional field set.
func Default() *Config {
	return &Config{
		Steps:        DefaultSteps,
		LearningRate: DefaultLearningRate,
		LogEvery:     DefaultLogEvery,
		EvalSamples:  DefaultEvalSamples,
	}
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read decodes a YAML file without validating it, so callers can apply
// Overrides before calling Validate.
func Read(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Network != "" {
		c.Network = o.Network
	}
	if o.Steps > 0 {
		c.Steps = o.Steps
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.L1 > 0 {
		c.L1 = o.L1
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Network == "" {
		return errors.New("network config path must be set")
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be > 0 (got %d)", c.Steps)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.L1 < 0 {
		return fmt.Errorf("l1 must be >= 0 (got %g)", c.L1)
	}
	if c.EvalSamples < 0 {
		return fmt.Errorf("eval_samples must be >= 0 (got %d)", c.EvalSamples)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = DefaultLogEvery
	}
	return nil
}
