package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
	"github.com/rrumana/game-of-life-reverse/internal/satbackend"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1, cfg.Generations)
	assert.Equal(t, grid.Dead, cfg.Boundary)
	assert.Equal(t, 10, cfg.MaxSolutions)
	assert.Equal(t, satbackend.Sequential, cfg.Backend)
}

func TestNewWithOptions(t *testing.T) {
	cfg := New(
		WithGenerations(3),
		WithBoundary(grid.Wrap),
		WithMaxSolutions(5),
		WithTimeout(2*time.Second),
		WithBackend(satbackend.Portfolio),
		WithEffort(satbackend.Thorough),
		WithSeed(42),
	)
	assert.Equal(t, 3, cfg.Generations)
	assert.Equal(t, grid.Wrap, cfg.Boundary)
	assert.Equal(t, 5, cfg.MaxSolutions)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, satbackend.Portfolio, cfg.Backend)
	assert.Equal(t, satbackend.Thorough, cfg.Effort)
	require.NotNil(t, cfg.Seed)
	assert.EqualValues(t, 42, *cfg.Seed)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := []byte("generations: 2\nboundary: wrap\nmax_solutions: 7\nbackend: portfolio\neffort: thorough\ntimeout_ms: 500\n")
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Generations)
	assert.Equal(t, grid.Wrap, cfg.Boundary)
	assert.Equal(t, 7, cfg.MaxSolutions)
	assert.Equal(t, satbackend.Portfolio, cfg.Backend)
	assert.Equal(t, satbackend.Thorough, cfg.Effort)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
}

func TestLoadFileRejectsUnknownBoundary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boundary: sideways\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}
