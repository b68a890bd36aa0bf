package ports

import (
	"context"

	"github.com/bnema/honkbreach/internal/domain"
)

type DesktopSettings interface {
	Read(ctx context.Context) (domain.WallpaperSettings, error)
	Write(ctx context.Context, settings domain.WallpaperSettings) error
	// Notify makes the desktop pick up the last written settings.
	Notify(ctx context.Context) error
}
