package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Display.EnableCreate)
	assert.True(t, cfg.Display.EnableClear)
	assert.True(t, cfg.Display.EnableSearch)
	assert.True(t, cfg.Display.UseAvatar)
	assert.Equal(t, "Select...", cfg.Display.Placeholder)
	assert.Equal(t, "roriselect", cfg.Display.ClassNamePrefix)
	assert.Equal(t, 8, cfg.Display.MenuHeight)

	assert.Equal(t, 300*time.Millisecond, cfg.Platform.Latency)
	assert.False(t, cfg.Platform.Persist)
	assert.True(t, cfg.Platform.SelectEnabled)
	assert.Equal(t, filepath.Join(dir, "records.yaml"), cfg.Platform.Dataset)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "roriselect.log"), cfg.Log.File)
}

func TestLoadFrom_File(t *testing.T) {
	dir := t.TempDir()
	content := `
display:
  enable_create: false
  placeholder: Pick one
platform:
  latency: 1s
  dataset: /tmp/other.yaml
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.False(t, cfg.Display.EnableCreate)
	assert.True(t, cfg.Display.EnableClear)
	assert.Equal(t, "Pick one", cfg.Display.Placeholder)
	assert.Equal(t, time.Second, cfg.Platform.Latency)
	assert.Equal(t, "/tmp/other.yaml", cfg.Platform.Dataset)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	t.Setenv("DISPLAY_ENABLE_SEARCH", "false")
	t.Setenv("PLATFORM_CLEAR_ENABLED", "false")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.Display.EnableSearch)
	assert.False(t, cfg.Platform.ClearEnabled)
	assert.False(t, cfg.Display.Settings().EnableSearch)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	cfg.Platform.Dataset = "/data/records.yaml"
	require.NoError(t, cfg.Save())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.Path())

	reloaded, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/records.yaml", reloaded.Platform.Dataset)
}

func TestSave_NotLoaded(t *testing.T) {
	assert.Error(t, (&Config{}).Save())
}

func TestGetConfigDir_Home(t *testing.T) {
	t.Setenv("RORISELECT_HOME", "/srv/rori")

	dir, err := getConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/rori", ".roriselect"), dir)
}
