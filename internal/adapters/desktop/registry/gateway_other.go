//go:build !windows

package registry

import (
	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"go.uber.org/zap"
)

func New(_ *zap.Logger) (ports.DesktopSettings, error) {
	return nil, domain.ErrUnsupportedPlatform
}
