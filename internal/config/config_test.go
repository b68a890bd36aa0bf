package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Empty(t, cfg.AssetPath)
	assert.Equal(t, BackendAuto, cfg.DesktopBackend)
	assert.Equal(t, filepath.Join(home, ".config", "honk", "desktop.toml"), cfg.DesktopFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "honk")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[asset]
path = "/srv/honk/breach.bmp"

[desktop]
backend = "file"
file = "/srv/honk/desktop.toml"

[log]
level = "debug"
development = true
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/srv/honk/breach.bmp", cfg.AssetPath)
	assert.Equal(t, BackendFile, cfg.DesktopBackend)
	assert.Equal(t, "/srv/honk/desktop.toml", cfg.DesktopFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopment)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HONK_ASSET_PATH", "/env/breach.bmp")
	t.Setenv("HONK_LOG_LEVEL", "error")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/env/breach.bmp", cfg.AssetPath)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HONK_DESKTOP_BACKEND", "x11")

	_, err := Load(viper.New())
	require.ErrorIs(t, err, errUnknownBackend)
}

func TestBackendResolvesAuto(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		goos    string
		want    string
	}{
		{name: "auto on windows", backend: BackendAuto, goos: "windows", want: BackendWindows},
		{name: "auto on linux", backend: BackendAuto, goos: "linux", want: BackendFile},
		{name: "explicit file on windows", backend: BackendFile, goos: "windows", want: BackendFile},
		{name: "explicit windows elsewhere", backend: BackendWindows, goos: "darwin", want: BackendWindows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{DesktopBackend: tt.backend}.Backend(tt.goos))
		})
	}
}
