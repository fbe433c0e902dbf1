package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
rules:
  - name: workspaces
    searchPath: /srv/build/workspaces
    matchPatterns: ["branches"]
    excludePatterns: ["master"]
    keepDurationDays: 7
    scanDepth: 2
  - name: scratch
    searchPath: /srv/scratch
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	require.Len(t, cfg.Rules, 2)

	ws := cfg.Rules[0]
	assert.Equal(t, "workspaces", ws.Name)
	assert.Equal(t, "/srv/build/workspaces", ws.SearchPath)
	assert.Equal(t, []string{"branches"}, ws.MatchPatterns)
	assert.Equal(t, []string{"master"}, ws.ExcludePatterns)
	assert.Equal(t, 7, ws.KeepDurationDays)

	// omitted sections fall back to their defaults
	scratch := cfg.Rules[1]
	assert.Empty(t, scratch.MatchPatterns)
	assert.Empty(t, scratch.ExcludePatterns)
	assert.Zero(t, scratch.KeepDurationDays)
	assert.Zero(t, scratch.ScanDepth)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("SWEEP_ROOT", "/srv/ci")

	path := writeConfig(t, `
rules:
  - name: ci
    searchPath: $(SWEEP_ROOT)/workspaces
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/ci/workspaces", cfg.Rules[0].SearchPath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsEmptyRules(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	_, err := Load(path)
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "rules: [\n")

	_, err := Load(path)
	require.Error(t, err)
}
