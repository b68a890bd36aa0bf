package toml

import (
	"fmt"

	"github.com/bnema/honkbreach/internal/domain"
)

const currentSchemaVersion = 1

type desktopSchema struct {
	Version        int    `toml:"version"`
	Wallpaper      *string `toml:"wallpaper,omitempty"`
	WallpaperStyle *string `toml:"wallpaper_style,omitempty"`
	TileWallpaper  *string `toml:"tile_wallpaper,omitempty"`
	RefreshedAt    string  `toml:"refreshed_at,omitempty"`
}

func (s *desktopSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s desktopSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported desktop schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func storedValue(value *string) domain.Resolution[string] {
	if value == nil {
		return domain.Resolution[string]{}
	}
	return domain.Resolved(*value)
}
