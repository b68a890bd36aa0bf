package domain

const (
	DefaultWallpaperStyle = "10"
	DefaultTileWallpaper  = "0"
	HijackWallpaperStyle  = "2"
	HijackTileWallpaper   = "0"
)

type WallpaperSettings struct {
	Path  string
	Style string
	Tile  string
}

// StoredWallpaper is a raw read from a settings store. An unresolved value was
// missing from the store; a resolved empty string was present but empty.
type StoredWallpaper struct {
	Path  Resolution[string]
	Style Resolution[string]
	Tile  Resolution[string]
}

// Settings falls back to the defaults only for missing values.
func (s StoredWallpaper) Settings() WallpaperSettings {
	return WallpaperSettings{
		Path:  valueOr(s.Path, ""),
		Style: valueOr(s.Style, DefaultWallpaperStyle),
		Tile:  valueOr(s.Tile, DefaultTileWallpaper),
	}
}

func DefaultWallpaperSettings() WallpaperSettings {
	return StoredWallpaper{}.Settings()
}

func HijackSettings(assetPath string) WallpaperSettings {
	return WallpaperSettings{
		Path:  assetPath,
		Style: HijackWallpaperStyle,
		Tile:  HijackTileWallpaper,
	}
}

func valueOr(r Resolution[string], fallback string) string {
	if value, ok := r.Get(); ok {
		return value
	}
	return fallback
}
