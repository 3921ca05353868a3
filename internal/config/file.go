package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/satbackend"
)

// fileConfig is the on-disk YAML shape for a config file, a thin
// collaborator-level concern per spec §1/§6: it is not part of the
// core and exists only to translate into Config.
type fileConfig struct {
	Generations  int    `yaml:"generations"`
	Boundary     string `yaml:"boundary"`
	MaxSolutions int    `yaml:"max_solutions"`
	TimeoutMS    int    `yaml:"timeout_ms"`
	Backend      string `yaml:"backend"`
	Effort       string `yaml:"effort"`
	Seed         *int64 `yaml:"seed"`
}

// LoadFile reads a YAML configuration file and returns the
// corresponding Config, seeded from Default() for any field the file
// omits.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg := Default()
	if fc.Generations > 0 {
		cfg.Generations = fc.Generations
	}
	if fc.MaxSolutions > 0 {
		cfg.MaxSolutions = fc.MaxSolutions
	}
	if fc.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutMS) * time.Millisecond
	}
	if fc.Seed != nil {
		cfg.Seed = fc.Seed
	}

	b, err := parseBoundary(fc.Boundary)
	if err != nil {
		return Config{}, err
	}
	if fc.Boundary != "" {
		cfg.Boundary = b
	}

	if fc.Backend != "" {
		k, err := parseBackend(fc.Backend)
		if err != nil {
			return Config{}, err
		}
		cfg.Backend = k
	}

	if fc.Effort != "" {
		e, err := parseEffort(fc.Effort)
		if err != nil {
			return Config{}, err
		}
		cfg.Effort = e
	}

	return cfg, nil
}

func parseBoundary(s string) (grid.Boundary, error) {
	switch s {
	case "", "dead":
		return grid.Dead, nil
	case "wrap":
		return grid.Wrap, nil
	case "mirror":
		return grid.Mirror, nil
	default:
		return 0, fmt.Errorf("config: unrecognized boundary %q", s)
	}
}

func parseBackend(s string) (satbackend.Kind, error) {
	switch s {
	case "", "sequential":
		return satbackend.Sequential, nil
	case "portfolio":
		return satbackend.Portfolio, nil
	default:
		return 0, fmt.Errorf("config: unrecognized backend %q", s)
	}
}

func parseEffort(s string) (satbackend.Effort, error) {
	switch s {
	case "", "fast":
		return satbackend.Fast, nil
	case "balanced":
		return satbackend.Balanced, nil
	case "thorough":
		return satbackend.Thorough, nil
	default:
		return 0, fmt.Errorf("config: unrecognized effort %q", s)
	}
}
