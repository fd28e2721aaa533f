// Package config holds the file names and knobs the commands share.
// Values come from Default, then an optional YAML file, then flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Artifacts struct {
	Model    string `yaml:"model"`
	Scaler   string `yaml:"scaler"`
	Features string `yaml:"features"`
}

type Importance struct {
	Output   string  `yaml:"output"`
	Dataset  string  `yaml:"dataset"`
	Target   string  `yaml:"target"`
	TestSize float64 `yaml:"test_size"`
	Seed     uint32  `yaml:"seed"`
	SplitDir string  `yaml:"split_dir"`
}

type Evaluate struct {
	Workers int `yaml:"workers"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Artifacts  Artifacts  `yaml:"artifacts"`
	Importance Importance `yaml:"importance"`
	Evaluate   Evaluate   `yaml:"evaluate"`
	// DB is the libsql database path; empty means the user cache dir.
	DB  string `yaml:"db"`
	Log Log    `yaml:"log"`
}

func Default() Config {
	return Config{
		Artifacts: Artifacts{
			Model:    "voting_model.json",
			Scaler:   "scaler.json",
			Features: "feature_names.json",
		},
		Importance: Importance{
			Output:   "feature_importance.csv",
			Dataset:  "german_credit_data.csv",
			Target:   "Risk",
			TestSize: 0.2,
			Seed:     42,
		},
		Evaluate: Evaluate{Workers: 4},
		Log:      Log{Level: "info"},
	}
}

// Load overlays the YAML file at path on the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Artifacts.Model == "" {
		errs = append(errs, errors.New("artifacts.model is required"))
	}
	if c.Artifacts.Scaler == "" {
		errs = append(errs, errors.New("artifacts.scaler is required"))
	}
	if c.Artifacts.Features == "" {
		errs = append(errs, errors.New("artifacts.features is required"))
	}
	if c.Importance.TestSize <= 0 || c.Importance.TestSize >= 1 {
		errs = append(errs, fmt.Errorf("importance.test_size %v must be in (0,1)", c.Importance.TestSize))
	}
	if c.Evaluate.Workers < 1 {
		errs = append(errs, fmt.Errorf("evaluate.workers %d must be at least 1", c.Evaluate.Workers))
	}
	return errors.Join(errs...)
}
