package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TakeoverController swaps the desktop wallpaper for the fake asset while the
// actor is agitated and puts the captured original back afterwards.
//
// The original is captured on the first hijack of the process and reused for
// every later episode.
type TakeoverController struct {
	desktop  ports.DesktopSettings
	assets   ports.AssetProvider
	logger   *zap.Logger
	state    domain.TakeoverState
	original domain.Resolution[domain.WallpaperSettings]
	episode  uuid.UUID
}

func NewTakeoverController(desktop ports.DesktopSettings, assets ports.AssetProvider, logger *zap.Logger) *TakeoverController {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TakeoverController{
		desktop: desktop,
		assets:  assets,
		logger:  logger,
		state:   domain.TakeoverNormal,
	}
}

func (c *TakeoverController) State() domain.TakeoverState {
	return c.state
}

func (c *TakeoverController) Hijacked() bool {
	return c.state == domain.TakeoverHijacked
}

func (c *TakeoverController) Original() (domain.WallpaperSettings, bool) {
	return c.original.Get()
}

// Step applies one frame's agitation signal.
func (c *TakeoverController) Step(ctx context.Context, agitated bool) error {
	switch {
	case agitated && c.state == domain.TakeoverNormal:
		return c.hijack(ctx)
	case !agitated && c.state == domain.TakeoverHijacked:
		return c.restore(ctx)
	default:
		return nil
	}
}

// ForceNormal restores the original wallpaper whatever the agitation signal.
func (c *TakeoverController) ForceNormal(ctx context.Context) error {
	if c.state != domain.TakeoverHijacked {
		return nil
	}

	return c.restore(ctx)
}

func (c *TakeoverController) hijack(ctx context.Context) error {
	c.captureOriginal(ctx)

	c.state = domain.TakeoverHijacked
	c.episode = uuid.New()
	logger := c.logger.With(zap.Stringer("episode", c.episode))
	logger.Info("desktop hijacked")

	path, err := c.assets.Ensure(ctx)
	if err != nil {
		logger.Warn("fake wallpaper unavailable, skipping apply", zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrAssetUnavailable, err)
	}

	if err := c.apply(ctx, domain.HijackSettings(path)); err != nil {
		logger.Warn("apply fake wallpaper", zap.Error(err))
		return fmt.Errorf("apply fake wallpaper: %w", err)
	}

	return nil
}

func (c *TakeoverController) restore(ctx context.Context) error {
	c.state = domain.TakeoverNormal

	original, ok := c.original.Get()
	if !ok {
		return domain.ErrSnapshotNotCaptured
	}

	logger := c.logger.With(zap.Stringer("episode", c.episode))

	if err := c.apply(ctx, original); err != nil {
		logger.Warn("restore original wallpaper", zap.Error(err))
		return fmt.Errorf("restore original wallpaper: %w", err)
	}

	logger.Info("desktop restored", zap.String("path", original.Path))
	return nil
}

func (c *TakeoverController) captureOriginal(ctx context.Context) {
	if c.original.IsResolved() {
		return
	}

	settings, err := c.desktop.Read(ctx)
	if err != nil {
		c.logger.Debug("read desktop settings, using defaults", zap.Error(err))
		settings = domain.DefaultWallpaperSettings()
	}

	c.original = domain.Resolved(settings)
}

func (c *TakeoverController) apply(ctx context.Context, settings domain.WallpaperSettings) error {
	writeErr := c.desktop.Write(ctx, settings)
	if writeErr != nil {
		writeErr = fmt.Errorf("write desktop settings: %w", writeErr)
	}

	notifyErr := c.desktop.Notify(ctx)
	if notifyErr != nil {
		notifyErr = fmt.Errorf("notify desktop: %w", notifyErr)
	}

	return errors.Join(writeErr, notifyErr)
}
