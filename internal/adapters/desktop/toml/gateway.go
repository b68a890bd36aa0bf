package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	desktopFileMode = 0o600
	desktopDirMode  = 0o700
	tempFilePattern = ".desktop-*.toml.tmp"
)

// Gateway stores wallpaper settings in a TOML file. It stands in for the OS
// settings store on hosts without a registry.
type Gateway struct {
	fs    afero.Fs
	path  string
	clock ports.Clock
	mu    sync.Mutex
}

var _ ports.DesktopSettings = (*Gateway)(nil)

func NewGateway(fs afero.Fs, path string, clock ports.Clock) (*Gateway, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if path == "" {
		return nil, errors.New("desktop settings path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve desktop settings path: %w", err)
	}

	return &Gateway{fs: fs, path: filepath.Clean(absPath), clock: clock}, nil
}

func (g *Gateway) Path() string {
	return g.path
}

func (g *Gateway) Read(ctx context.Context) (domain.WallpaperSettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.WallpaperSettings{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	file, err := g.readSchema()
	if err != nil {
		return domain.WallpaperSettings{}, err
	}

	stored := domain.StoredWallpaper{
		Path:  storedValue(file.Wallpaper),
		Style: storedValue(file.WallpaperStyle),
		Tile:  storedValue(file.TileWallpaper),
	}

	return stored.Settings(), nil
}

func (g *Gateway) Write(ctx context.Context, settings domain.WallpaperSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	file, err := g.readSchema()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	file.Wallpaper = &settings.Path
	file.WallpaperStyle = &settings.Style
	file.TileWallpaper = &settings.Tile

	return g.writeSchema(file)
}

// Notify stamps the file with the refresh time.
func (g *Gateway) Notify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	file, err := g.readSchema()
	if err != nil {
		return err
	}
	file.RefreshedAt = g.clock.Now().UTC().Format(time.RFC3339Nano)

	return g.writeSchema(file)
}

func (g *Gateway) readSchema() (desktopSchema, error) {
	data, err := afero.ReadFile(g.fs, g.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return desktopSchema{}, fmt.Errorf("desktop settings file %q: %w", g.path, err)
		}
		return desktopSchema{}, fmt.Errorf("read desktop settings file: %w", err)
	}

	var file desktopSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return desktopSchema{}, fmt.Errorf("decode desktop settings file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return desktopSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (g *Gateway) writeSchema(file desktopSchema) error {
	file.applyDefaults()

	if err := g.fs.MkdirAll(filepath.Dir(g.path), desktopDirMode); err != nil {
		return fmt.Errorf("create desktop settings directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode desktop settings file: %w", err)
	}

	tempFile, err := afero.TempFile(g.fs, filepath.Dir(g.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp desktop settings file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = g.fs.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp desktop settings file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp desktop settings file: %w", err)
	}

	if err := g.fs.Rename(tempName, g.path); err != nil {
		return fmt.Errorf("replace desktop settings file: %w", err)
	}
	cleanup = false

	if err := g.fs.Chmod(g.path, desktopFileMode); err != nil {
		return fmt.Errorf("chmod desktop settings file: %w", err)
	}

	return nil
}
