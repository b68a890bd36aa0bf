//go:build windows

package registry

import (
	"context"
	"errors"
	"fmt"
	"unsafe"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
	winreg "golang.org/x/sys/windows/registry"
)

const (
	desktopKeyPath      = `Control Panel\Desktop`
	wallpaperValue      = "WallPaper"
	wallpaperStyleValue = "WallpaperStyle"
	tileWallpaperValue  = "TileWallpaper"

	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

var procSystemParametersInfo = windows.NewLazySystemDLL("user32.dll").NewProc("SystemParametersInfoW")

// Gateway reads and writes HKCU\Control Panel\Desktop and asks the shell to
// reload the wallpaper.
type Gateway struct {
	logger *zap.Logger
}

var _ ports.DesktopSettings = (*Gateway)(nil)

func New(logger *zap.Logger) (ports.DesktopSettings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := procSystemParametersInfo.Find(); err != nil {
		return nil, fmt.Errorf("locate SystemParametersInfoW: %w", err)
	}

	return &Gateway{logger: logger}, nil
}

func (g *Gateway) Read(ctx context.Context) (domain.WallpaperSettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.WallpaperSettings{}, err
	}

	key, err := winreg.OpenKey(winreg.CURRENT_USER, desktopKeyPath, winreg.QUERY_VALUE)
	if err != nil {
		return domain.WallpaperSettings{}, fmt.Errorf("open desktop key: %w", err)
	}
	defer key.Close()

	stored := domain.StoredWallpaper{
		Path:  g.stringValue(key, wallpaperValue),
		Style: g.stringValue(key, wallpaperStyleValue),
		Tile:  g.stringValue(key, tileWallpaperValue),
	}

	return stored.Settings(), nil
}

func (g *Gateway) Write(ctx context.Context, settings domain.WallpaperSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := winreg.OpenKey(winreg.CURRENT_USER, desktopKeyPath, winreg.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open desktop key for writing: %w", err)
	}
	defer key.Close()

	var errs []error
	for _, value := range []struct{ name, data string }{
		{wallpaperValue, settings.Path},
		{wallpaperStyleValue, settings.Style},
		{tileWallpaperValue, settings.Tile},
	} {
		if err := key.SetStringValue(value.name, value.data); err != nil {
			errs = append(errs, fmt.Errorf("set %s: %w", value.name, err))
		}
	}

	return errors.Join(errs...)
}

// Notify re-applies the stored wallpaper path so the shell reloads it together
// with the style and tile values.
func (g *Gateway) Notify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	settings, err := g.Read(ctx)
	if err != nil {
		return err
	}

	path, err := windows.UTF16PtrFromString(settings.Path)
	if err != nil {
		return fmt.Errorf("encode wallpaper path: %w", err)
	}

	ok, _, callErr := procSystemParametersInfo.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(path)),
		spifUpdateIniFile|spifSendChange,
	)
	if ok == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", callErr)
	}

	return nil
}

// stringValue leaves missing or unreadable values unresolved; an empty value
// that exists is resolved to "".
func (g *Gateway) stringValue(key winreg.Key, name string) domain.Resolution[string] {
	value, _, err := key.GetStringValue(name)
	if err != nil {
		g.logger.Debug("desktop value unavailable", zap.String("value", name), zap.Error(err))
		return domain.Resolution[string]{}
	}

	return domain.Resolved(value)
}
