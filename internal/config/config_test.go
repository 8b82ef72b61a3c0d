package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4221", cfg.Addr)
	assert.Equal(t, "", cfg.Directory)
	assert.Equal(t, 0, cfg.MaxConns)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestLoadFlags(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load([]string{"--directory", dir, "--addr", "0.0.0.0:8080", "--max-conns", "32", "--log-level", "debug"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Directory)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Equal(t, 32, cfg.MaxConns)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cases := map[string][]string{
		"missing directory":  {"--directory", filepath.Join(dir, "nope")},
		"file not directory": {"--directory", file},
		"negative max-conns": {"--max-conns", "-1"},
		"bad log level":      {"--log-level", "loud"},
		"unknown flag":       {"--port", "80"},
		"stray argument":     {"extra"},
		"empty addr":         {"--addr", ""},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(args, io.Discard)
			assert.Error(t, err)
		})
	}
}
