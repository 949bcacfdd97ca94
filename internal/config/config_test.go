package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME, the config path and the working directory at empty
// temp dirs so a developer's own .kanban.yaml is never read.
func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Setenv("KANBAN_CONFIG_PATH", dir)
	t.Chdir(t.TempDir())
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Demo)
	assert.Empty(t, cfg.Seed)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kanban.yaml"), []byte(`
theme: neon
demo: false
seed: ~/boards/work.yaml
log:
  level: debug
`), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Demo)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "boards", "work.yaml"), cfg.Seed)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("KANBAN_THEME", "mono")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kanban.yaml"), []byte("theme: neon\n"), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoad_NestedKeyFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("KANBAN_LOG_LEVEL", "error")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}
