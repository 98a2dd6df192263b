package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty dir and clears TADA_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TADA_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "TODO List", c.UI.Title)
	assert.Equal(t, "classic", c.UI.Theme)
	assert.Equal(t, "auto", c.UI.Color)
	assert.Equal(t, 200, c.UI.CharLimit)
	assert.Equal(t, "all", c.UI.Filter)
	assert.Equal(t, "info", c.Log.Level)
	assert.Empty(t, c.Log.File)
	assert.True(t, c.Seed.Builtin)
	require.NoError(t, c.Validate())
}

func TestLoadHomeFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "tada")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[ui]
theme = "neon"
char_limit = 80
filter = "pending"

[seed]
builtin = false
`), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "neon", c.UI.Theme)
	assert.Equal(t, 80, c.UI.CharLimit)
	assert.Equal(t, "pending", c.UI.Filter)
	assert.False(t, c.Seed.Builtin)
	assert.Equal(t, "TODO List", c.UI.Title, "unset keys keep defaults")
}

func TestLoadIgnoresOtherConfigFiles(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "tada")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ui:\n  theme: neon\n"), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "classic", c.UI.Theme)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\ntheme = \"mono\"\n"), 0o644))
	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "mono", c.UI.Theme)
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "tada.toml")
	require.NoError(t, os.WriteFile(p, []byte("[log]\nlevel = \"debug\"\nfile = \"/tmp/tada.log\"\n"), 0o644))

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "/tmp/tada.log", c.Log.File)
}

func TestLoadConfigEnv(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "tada.toml")
	require.NoError(t, os.WriteFile(p, []byte("[ui]\ntitle = \"Groceries\"\n"), 0o644))
	t.Setenv("TADA_CONFIG", p)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", c.UI.Title)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_UI_THEME", "mono")
	t.Setenv("TADA_LOG_LEVEL", "warn")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mono", c.UI.Theme)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(p, []byte("[ui\ntheme = "), 0o644))
	_, err := Load(p)
	require.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	isolate(t)
	c, err := Load("")
	require.NoError(t, err)

	c.UI.Filter = "archived"
	c.UI.Theme = "solarized"
	c.UI.Color = "sometimes"
	c.Log.Level = "loud"
	c.Log.Format = "xml"
	c.UI.CharLimit = -1

	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want classic, neon, mono")
	for _, want := range []string{"ui.filter", "ui.theme", "ui.color", "log.level", "log.format", "ui.char_limit"} {
		assert.Contains(t, err.Error(), want)
	}
}
