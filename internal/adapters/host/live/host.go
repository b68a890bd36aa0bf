package live

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/honkbreach/internal/adapters/render/glitch"
	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"go.uber.org/zap"
)

const DefaultFrameInterval = time.Second / 60

var errNoPoller = errors.New("live host needs an input poller")

type Poller interface {
	Poll()
}

type Config struct {
	Interval time.Duration
	Actor    domain.ActorSnapshot
	Width    int
	Height   int
}

// Host runs a frame loop around a stationary decoy actor. It has no task
// database, so only the manual override can agitate it.
type Host struct {
	cfg     Config
	poller  Poller
	ticks   []ports.TickFunc
	renders []ports.RenderFunc
	surface *glitch.ImageSurface
	logger  *zap.Logger
}

var (
	_ ports.Host       = (*Host)(nil)
	_ ports.TaskLookup = (*Host)(nil)
)

func NewHost(cfg Config, poller Poller, logger *zap.Logger) (*Host, error) {
	if poller == nil {
		return nil, errNoPoller
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultFrameInterval
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1, 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Host{
		cfg:     cfg,
		poller:  poller,
		surface: glitch.NewImageSurface(cfg.Width, cfg.Height),
		logger:  logger,
	}, nil
}

func (h *Host) OnTick(fn ports.TickFunc) {
	h.ticks = append(h.ticks, fn)
}

func (h *Host) OnRender(fn ports.RenderFunc) {
	h.renders = append(h.renders, fn)
}

func (h *Host) TaskIndexByID(string) int {
	return -1
}

// Run drives frames until ctx is done.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.cfg.Interval)
	defer ticker.Stop()

	h.logger.Info("live host started", zap.Duration("interval", h.cfg.Interval))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.frame(ctx)
		}
	}
}

func (h *Host) frame(ctx context.Context) {
	h.poller.Poll()

	for _, tick := range h.ticks {
		tick(ctx, h.cfg.Actor)
	}

	h.surface.Clear()
	for _, render := range h.renders {
		render(ctx, h.cfg.Actor, h.surface)
	}
}
