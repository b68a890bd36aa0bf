package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/honk"
	envPrefix  = "HONK"

	AssetPathKey      = "asset.path"
	DesktopBackendKey = "desktop.backend"
	DesktopFileKey    = "desktop.file"
	LogLevelKey       = "log.level"
	LogDevelopmentKey = "log.development"

	BackendAuto    = "auto"
	BackendWindows = "windows"
	BackendFile    = "file"

	desktopFileName = "desktop.toml"
)

var errUnknownBackend = errors.New("unknown desktop backend")

type Config struct {
	// AssetPath is empty unless configured; the asset store then picks its
	// temp-dir default.
	AssetPath      string
	DesktopBackend string
	DesktopFile    string
	LogLevel       string
	LogDevelopment bool
}

// Load reads $HOME/.config/honk/config.toml when it exists and lets HONK_*
// environment variables override any key, e.g. HONK_ASSET_PATH.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(DesktopBackendKey, BackendAuto)
	cfg.SetDefault(DesktopFileKey, filepath.Join(homeDir, configDir, desktopFileName))
	cfg.SetDefault(LogLevelKey, "warn")
	cfg.SetDefault(LogDevelopmentKey, false)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		AssetPath:      cfg.GetString(AssetPathKey),
		DesktopBackend: strings.ToLower(cfg.GetString(DesktopBackendKey)),
		DesktopFile:    cfg.GetString(DesktopFileKey),
		LogLevel:       cfg.GetString(LogLevelKey),
		LogDevelopment: cfg.GetBool(LogDevelopmentKey),
	}

	if err := loaded.validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

// Backend resolves "auto" for the given GOOS.
func (c Config) Backend(goos string) string {
	if c.DesktopBackend != BackendAuto {
		return c.DesktopBackend
	}
	if goos == "windows" {
		return BackendWindows
	}
	return BackendFile
}

func (c Config) validate() error {
	switch c.DesktopBackend {
	case BackendAuto, BackendWindows, BackendFile:
	default:
		return fmt.Errorf("%w: %q", errUnknownBackend, c.DesktopBackend)
	}

	if c.DesktopFile == "" {
		return errors.New("desktop file path is empty")
	}

	return nil
}
