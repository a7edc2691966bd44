package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dububu/mediatools/pkg/cache"
	"github.com/dububu/mediatools/pkg/generator"
	"github.com/dububu/mediatools/pkg/otel"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "mediatools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestParse(t *testing.T) {
	t.Setenv("TEST_REPLICATE_TOKEN", "r8_test")

	path := writeConfig(t, `
output: assets/generated

renderer:
  type: replicate
  model: black-forest-labs/flux-dev
  token: ${TEST_REPLICATE_TOKEN}
  limit: 2

searcher:
  type: tenor
  token: tenor-key
  cache: 30m
  proxy:
    url: http://localhost:3128

completer:
  type: google
  token: gemini-key
`)

	cfg, err := Parse(path)
	require.NoError(t, err)

	defer cfg.Close()

	require.Equal(t, "assets/generated", cfg.Output)

	r, err := cfg.Renderer()
	require.NoError(t, err)
	require.Implements(t, (*otel.Renderer)(nil), r)

	s := cfg.Searcher()
	require.NotNil(t, s)
	require.Implements(t, (*cache.Searcher)(nil), s)

	c, err := cfg.Completer()
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestParseMissingCredentials(t *testing.T) {
	t.Setenv("TEST_EMPTY_TOKEN", "")

	path := writeConfig(t, `
renderer:
  type: replicate
  token: ${TEST_EMPTY_TOKEN}

searcher:
  type: tenor
`)

	cfg, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, generator.DefaultOutput, cfg.Output)

	_, err = cfg.Renderer()
	require.ErrorIs(t, err, generator.ErrMissingCredential)

	_, err = cfg.Completer()
	require.ErrorIs(t, err, generator.ErrMissingCredential)

	require.Nil(t, cfg.Searcher())
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown field": "renderer:\n  type: replicate\n  tokn: x\n",
		"renderer type": "renderer:\n  type: midjourney\n  token: x\n",
		"searcher type": "searcher:\n  type: giphy\n  token: x\n",
		"flux model":    "renderer:\n  model: flux-9000\n  token: x\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(writeConfig(t, ""))
	require.NoError(t, err)

	require.Nil(t, cfg.Searcher())
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	for _, key := range []string{"REPLICATE_API_TOKEN", "TENOR_API_KEY", "GEMINI_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("TENOR_API_KEY=from-env-file\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	defer cfg.Close()

	require.Equal(t, generator.DefaultOutput, cfg.Output)
	require.NotNil(t, cfg.Searcher())

	_, err = cfg.Renderer()
	require.ErrorIs(t, err, generator.ErrMissingCredential)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("other.yaml")
	require.Error(t, err)
}

func TestCreateLimiter(t *testing.T) {
	require.Nil(t, createLimiter(nil))

	limit := 3
	l := createLimiter(&limit)

	require.NotNil(t, l)
	require.Equal(t, 3, l.Burst())
}

func TestSearcherCacheDuration(t *testing.T) {
	file, err := parseFile([]byte("searcher:\n  token: x\n  cache: 90s\n"))
	require.NoError(t, err)

	require.Equal(t, 90*time.Second, file.Searcher.Cache)
	require.Equal(t, "x", file.Searcher.Token)
}
