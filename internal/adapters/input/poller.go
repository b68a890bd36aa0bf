package input

import (
	"sync"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"go.uber.org/zap"
)

// Sample is the raw device state read once per frame.
type Sample struct {
	PrimaryDown bool
	CancelDown  bool
	Cursor      domain.Vec2
}

type Sampler func() (Sample, error)

// EdgeDetector turns a level signal into rising edges.
type EdgeDetector struct {
	down bool
}

func (d *EdgeDetector) Update(down bool) bool {
	rising := down && !d.down
	d.down = down
	return rising
}

// Poller latches one sample per frame so every query within a frame sees the
// same device state.
type Poller struct {
	sample  Sampler
	logger  *zap.Logger
	mu      sync.Mutex
	edge    EdgeDetector
	clicked bool
	current Sample
}

var _ ports.Input = (*Poller)(nil)

func NewPoller(sample Sampler, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Poller{sample: sample, logger: logger}
}

func (p *Poller) Poll() {
	sample, err := p.sample()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.logger.Debug("input sample failed", zap.Error(err))
		sample = Sample{Cursor: p.current.Cursor}
	}

	p.clicked = p.edge.Update(sample.PrimaryDown)
	p.current = sample
}

func (p *Poller) PrimaryClicked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clicked
}

func (p *Poller) Cursor() domain.Vec2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.Cursor
}

func (p *Poller) CancelPressed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.CancelDown
}
