package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TODO_CONFIG", filepath.Join(dir, "missing.toml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "classic", c.UI.Theme)
	require.Equal(t, ColorAuto, c.UI.Color)
	require.True(t, c.UI.Mouse)
	require.Equal(t, 200, c.UI.CharLimit)
	require.Equal(t, "", c.Log.File)
	require.Equal(t, "info", c.Log.Level)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	data := `
[ui]
theme = "neon"
char_limit = 64
mouse = false

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("TODO_UI_THEME", "mono")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "mono", c.UI.Theme, "env wins over file")
	require.Equal(t, 64, c.UI.CharLimit)
	require.False(t, c.UI.Mouse)
	require.Equal(t, "debug", c.Log.Level)
}

func TestLoadConfigEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nfile = \"/tmp/todo.log\"\n"), 0o644))
	t.Setenv("TODO_CONFIG", path)

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/tmp/todo.log", c.Log.File)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\ntheme = "), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_UI_COLOR", "sometimes")
	_, err := Load("")
	require.ErrorContains(t, err, "ui.color")

	c := Config{UI: UIConfig{Color: ColorNever, CharLimit: -1}}
	require.ErrorContains(t, c.Validate(), "ui.char_limit")
}
