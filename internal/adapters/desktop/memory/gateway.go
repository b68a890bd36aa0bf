package memory

import (
	"context"
	"sync"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
)

// Gateway keeps desktop settings in memory and records every call.
type Gateway struct {
	mu        sync.Mutex
	current   domain.WallpaperSettings
	notified  domain.WallpaperSettings
	writes    []domain.WallpaperSettings
	reads     int
	notifies  int
	ReadErr   error
	WriteErr  error
	NotifyErr error
}

var _ ports.DesktopSettings = (*Gateway)(nil)

func NewGateway(initial domain.WallpaperSettings) *Gateway {
	return &Gateway{current: initial, notified: initial}
}

func (g *Gateway) Read(ctx context.Context) (domain.WallpaperSettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.WallpaperSettings{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.reads++
	if g.ReadErr != nil {
		return domain.WallpaperSettings{}, g.ReadErr
	}

	return g.current, nil
}

func (g *Gateway) Write(ctx context.Context, settings domain.WallpaperSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.writes = append(g.writes, settings)
	if g.WriteErr != nil {
		return g.WriteErr
	}
	g.current = settings

	return nil
}

func (g *Gateway) Notify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.notifies++
	if g.NotifyErr != nil {
		return g.NotifyErr
	}
	g.notified = g.current

	return nil
}

func (g *Gateway) Current() domain.WallpaperSettings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Displayed is what the desktop shows: the settings as of the last Notify.
func (g *Gateway) Displayed() domain.WallpaperSettings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.notified
}

func (g *Gateway) Writes() []domain.WallpaperSettings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.WallpaperSettings(nil), g.writes...)
}

func (g *Gateway) Reads() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reads
}

func (g *Gateway) Notifies() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.notifies
}
