package bmp

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"
)

const (
	DefaultFileName = "honk_fake_breach_wallpaper.bmp"
	assetFileMode   = 0o644
	assetDirMode    = 0o755
	tempFilePattern = ".honk-asset-*.bmp.tmp"
)

// Store keeps the fake wallpaper at a fixed path and only synthesizes it when
// the file is missing.
type Store struct {
	fs         afero.Fs
	path       string
	rng        Rand
	logger     *zap.Logger
	produced   domain.Resolution[string]
	synthesize func(Rand) (*image.RGBA, error)
}

var _ ports.AssetProvider = (*Store)(nil)

func DefaultPath() string {
	return filepath.Join(os.TempDir(), DefaultFileName)
}

func NewStore(fs afero.Fs, path string, rng Rand, logger *zap.Logger) (*Store, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if path == "" {
		path = DefaultPath()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve asset path: %w", err)
	}

	return &Store{
		fs:         fs,
		path:       filepath.Clean(absPath),
		rng:        rng,
		logger:     logger,
		synthesize: Synthesize,
	}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Ensure(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return "", fmt.Errorf("check asset %q: %w", s.path, err)
	}
	if exists {
		if !s.produced.IsResolved() {
			s.logger.Debug("reusing fake wallpaper", zap.String("path", s.path))
			s.produced = domain.Resolved(s.path)
		}
		return s.path, nil
	}

	if err := s.generate(); err != nil {
		return "", err
	}
	s.produced = domain.Resolved(s.path)

	return s.path, nil
}

// Regenerate drops the cached file and synthesizes a fresh one.
func (s *Store) Regenerate(ctx context.Context) (string, error) {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("remove asset %q: %w", s.path, err)
	}
	s.produced = domain.Resolution[string]{}

	return s.Ensure(ctx)
}

func (s *Store) generate() error {
	img, err := s.synthesize(s.rng)
	if err != nil {
		return fmt.Errorf("synthesize fake wallpaper: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, assetDirMode); err != nil {
		return fmt.Errorf("create asset directory: %w", err)
	}

	tempFile, err := afero.TempFile(s.fs, dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp asset file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = s.fs.Remove(tempName)
		}
	}()

	if err := bmp.Encode(tempFile, img); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("encode fake wallpaper: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp asset file: %w", err)
	}

	if err := s.fs.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace asset file: %w", err)
	}
	cleanup = false

	if err := s.fs.Chmod(s.path, assetFileMode); err != nil {
		return fmt.Errorf("chmod asset file: %w", err)
	}

	s.logger.Info("fake wallpaper generated", zap.String("path", s.path))
	return nil
}
