package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/honkbreach/internal/adapters/host/scripted"
	"github.com/bnema/honkbreach/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	noTask            = -1
	maxRepeatedFrames = 1 << 16
	maxScenarioFrames = 1 << 18
)

// ScenarioRepository loads replay scenarios from TOML files.
type ScenarioRepository struct {
	fs afero.Fs
}

func NewScenarioRepository(fs afero.Fs) *ScenarioRepository {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &ScenarioRepository{fs: fs}
}

func (r *ScenarioRepository) Load(path string) (scripted.Scenario, error) {
	data, err := afero.ReadFile(r.fs, filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return scripted.Scenario{}, fmt.Errorf("%w: %s", domain.ErrScenarioNotFound, path)
		}
		return scripted.Scenario{}, fmt.Errorf("read scenario file: %w", err)
	}

	var file scenarioSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return scripted.Scenario{}, fmt.Errorf("decode scenario file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return scripted.Scenario{}, err
	}
	file.applyDefaults()

	scenario, err := fromSchema(file)
	if err != nil {
		return scripted.Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	if scenario.Name == "" {
		scenario.Name = filepath.Base(path)
	}

	return scenario, nil
}

func fromSchema(file scenarioSchema) (scripted.Scenario, error) {
	basePosition, err := parseVec(file.Actor.Position, domain.Vec2{})
	if err != nil {
		return scripted.Scenario{}, fmt.Errorf("actor position: %w", err)
	}

	params := domain.ActorParameters{
		MaxRunSpeed:            file.Actor.MaxRunSpeed,
		MaxChargedAcceleration: file.Actor.MaxChargedAcceleration,
	}

	frames := make([]scripted.Frame, 0, len(file.Frames))
	var last time.Duration
	for i, entry := range file.Frames {
		expanded, err := expandFrame(entry, params, basePosition)
		if err != nil {
			return scripted.Scenario{}, fmt.Errorf("frame %d: %w", i, err)
		}
		if len(frames)+len(expanded) > maxScenarioFrames {
			return scripted.Scenario{}, fmt.Errorf("frame %d: scenario exceeds %d frames", i, maxScenarioFrames)
		}
		for _, frame := range expanded {
			if frame.At < last {
				return scripted.Scenario{}, fmt.Errorf("frame %d: time %s goes backwards (previous %s)", i, frame.At, last)
			}
			last = frame.At
			frames = append(frames, frame)
		}
	}

	return scripted.Scenario{
		Name:  file.Name,
		Tasks: file.Tasks,
		Desktop: domain.WallpaperSettings{
			Path:  file.Desktop.Wallpaper,
			Style: file.Desktop.WallpaperStyle,
			Tile:  file.Desktop.TileWallpaper,
		},
		Width:  file.Width,
		Height: file.Height,
		Frames: frames,
	}, nil
}

func expandFrame(entry frameSchema, params domain.ActorParameters, basePosition domain.Vec2) ([]scripted.Frame, error) {
	at, err := parseDuration(entry.At)
	if err != nil {
		return nil, fmt.Errorf("at: %w", err)
	}

	position, err := parseVec(entry.Position, basePosition)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}

	task := domain.TaskIndex(noTask)
	if entry.Task != nil {
		task = domain.TaskIndex(*entry.Task)
	}

	var click *domain.Vec2
	if len(entry.Click) > 0 {
		parsed, err := parseVec(entry.Click, domain.Vec2{})
		if err != nil {
			return nil, fmt.Errorf("click: %w", err)
		}
		click = &parsed
	}

	repeat := entry.Repeat
	if repeat <= 0 {
		repeat = 1
	}
	if repeat > maxRepeatedFrames {
		return nil, fmt.Errorf("repeat %d exceeds %d frames", repeat, maxRepeatedFrames)
	}

	var every time.Duration
	if repeat > 1 {
		every, err = parseDuration(entry.Every)
		if err != nil {
			return nil, fmt.Errorf("every: %w", err)
		}
		if every <= 0 {
			return nil, errors.New("every must be positive when repeat > 1")
		}
	}

	frames := make([]scripted.Frame, 0, repeat)
	for n := range repeat {
		frames = append(frames, scripted.Frame{
			At: at + time.Duration(n)*every,
			Actor: domain.ActorSnapshot{
				CurrentTask:  task,
				Speed:        entry.Speed,
				Acceleration: entry.Acceleration,
				Position:     position,
				Parameters:   params,
			},
			Click:  click,
			Cancel: entry.Cancel,
		})
	}

	return frames, nil
}

func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", raw)
	}

	return d, nil
}

func parseVec(raw []float64, fallback domain.Vec2) (domain.Vec2, error) {
	switch len(raw) {
	case 0:
		return fallback, nil
	case 2:
		return domain.Vec2{X: raw[0], Y: raw[1]}, nil
	default:
		return domain.Vec2{}, fmt.Errorf("expected [x, y], got %d values", len(raw))
	}
}
