// Package config assembles the recognized configuration options of
// spec §6 into a value-typed record, built by functional options in
// the style of the teacher's solver.Option/solver.New(options...).
package config

import (
	"time"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/satbackend"
)

// Config is the recognized configuration record of spec §6.
type Config struct {
	Generations  int
	Boundary     grid.Boundary
	MaxSolutions int
	Timeout      time.Duration
	Backend      satbackend.Kind
	Effort       satbackend.Effort
	Seed         *int64
}

// Default returns a Config with conservative defaults: one generation,
// Dead boundary, ten solutions, no timeout, the Sequential backend at
// Balanced effort.
func Default() Config {
	return Config{
		Generations:  1,
		Boundary:     grid.Dead,
		MaxSolutions: 10,
		Backend:      satbackend.Sequential,
		Effort:       satbackend.Balanced,
	}
}

// Option mutates a Config under construction.
type Option func(*Config)

// New builds a Config from Default() plus the given options.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithGenerations(g int) Option { return func(c *Config) { c.Generations = g } }

func WithBoundary(b grid.Boundary) Option { return func(c *Config) { c.Boundary = b } }

func WithMaxSolutions(k int) Option { return func(c *Config) { c.MaxSolutions = k } }

func WithTimeout(d time.Duration) Option { return func(c *Config) { c.Timeout = d } }

func WithBackend(k satbackend.Kind) Option { return func(c *Config) { c.Backend = k } }

func WithEffort(e satbackend.Effort) Option { return func(c *Config) { c.Effort = e } }

func WithSeed(seed int64) Option { return func(c *Config) { c.Seed = &seed } }

// BackendOptions projects the Config down to the satbackend.Options
// the SAT Backend contract expects.
func (c Config) BackendOptions() satbackend.Options {
	opts := satbackend.Options{
		Timeout: c.Timeout,
		Effort:  c.Effort,
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
	}
	return opts
}
