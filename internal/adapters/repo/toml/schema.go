package toml

import "fmt"

const currentSchemaVersion = 1

type scenarioSchema struct {
	Version int            `toml:"version"`
	Name    string         `toml:"name"`
	Width   int            `toml:"width,omitempty"`
	Height  int            `toml:"height,omitempty"`
	Desktop desktopSchema  `toml:"desktop"`
	Tasks   map[string]int `toml:"tasks"`
	Actor   actorSchema    `toml:"actor"`
	Frames  []frameSchema  `toml:"frames"`
}

type desktopSchema struct {
	Wallpaper      string `toml:"wallpaper"`
	WallpaperStyle string `toml:"wallpaper_style"`
	TileWallpaper  string `toml:"tile_wallpaper"`
}

type actorSchema struct {
	MaxRunSpeed            float64   `toml:"max_run_speed"`
	MaxChargedAcceleration float64   `toml:"max_charged_acceleration"`
	Position               []float64 `toml:"position"`
}

type frameSchema struct {
	At           string    `toml:"at"`
	Task         *int      `toml:"task,omitempty"`
	Speed        float64   `toml:"speed"`
	Acceleration float64   `toml:"acceleration"`
	Position     []float64 `toml:"position,omitempty"`
	Click        []float64 `toml:"click,omitempty"`
	Cancel       bool      `toml:"cancel"`
	Repeat       int       `toml:"repeat,omitempty"`
	Every        string    `toml:"every,omitempty"`
}

func (s *scenarioSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s scenarioSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported scenario schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
