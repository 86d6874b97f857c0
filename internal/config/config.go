// Package config holds the YAML-backed service configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes YAML strings like "2s" (or plain nanosecond counts).
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("bad duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type StorageConfig struct {
	Dir string `yaml:"dir"`
}

type SolverConfig struct {
	// Engine selects the search implementation: "recursive" or "iterative".
	Engine string `yaml:"engine"`
	// NodeBudget caps node expansions per solve; 0 = unlimited.
	NodeBudget int `yaml:"node_budget"`
	// Timeout bounds a single solve call; 0 = no timeout.
	Timeout Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Storage: StorageConfig{Dir: "./data"},
		Solver:  SolverConfig{Engine: "recursive", Timeout: Duration(8 * time.Second)},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Solver.Engine {
	case "", "recursive", "iterative":
	default:
		return fmt.Errorf("unknown solver engine %q (want recursive or iterative)", c.Solver.Engine)
	}
	if c.Solver.NodeBudget < 0 {
		return fmt.Errorf("solver node_budget must be >= 0, got %d", c.Solver.NodeBudget)
	}
	return nil
}
