package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bnema/honkbreach/internal/adapters/asset/bmp"
	"github.com/bnema/honkbreach/internal/adapters/desktop/registry"
	desktoptoml "github.com/bnema/honkbreach/internal/adapters/desktop/toml"
	"github.com/bnema/honkbreach/internal/adapters/render/report"
	"github.com/bnema/honkbreach/internal/application"
	"github.com/bnema/honkbreach/internal/config"
	"github.com/bnema/honkbreach/internal/logging"
	"github.com/bnema/honkbreach/internal/ports"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg            config.Config
	fs             afero.Fs
	logger         *zap.Logger
	goos           string
	now            func() time.Time
	reportRenderer func(application.ReplayResult, report.RenderOptions) (string, error)
}

func (a *app) wire(v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
	})
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	a.cfg = cfg
	a.fs = afero.NewOsFs()
	a.logger = logger
	a.goos = runtime.GOOS
	a.now = time.Now
	a.reportRenderer = report.Render

	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) assetStore() (*bmp.Store, error) {
	store, err := bmp.NewStore(a.fs, a.cfg.AssetPath, nil, a.logger.Named("asset"))
	if err != nil {
		return nil, fmt.Errorf("wire asset store: %w", err)
	}
	return store, nil
}

// desktopGateway returns the configured settings store: the registry on
// Windows, a TOML file everywhere else.
func (a *app) desktopGateway() (ports.DesktopSettings, error) {
	switch backend := a.cfg.Backend(a.goos); backend {
	case config.BackendWindows:
		gateway, err := registry.New(a.logger.Named("registry"))
		if err != nil {
			return nil, fmt.Errorf("wire registry desktop: %w", err)
		}
		return gateway, nil
	case config.BackendFile:
		gateway, err := desktoptoml.NewGateway(a.fs, a.cfg.DesktopFile, ports.SystemClock{})
		if err != nil {
			return nil, fmt.Errorf("wire file desktop: %w", err)
		}
		return gateway, nil
	default:
		return nil, fmt.Errorf("unknown desktop backend %q", backend)
	}
}
