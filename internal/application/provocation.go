package application

import (
	"time"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"go.uber.org/zap"
)

type ProvocationTracker struct {
	input  ports.Input
	state  domain.ProvocationState
	logger *zap.Logger
}

func NewProvocationTracker(input ports.Input, logger *zap.Logger) *ProvocationTracker {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ProvocationTracker{input: input, logger: logger}
}

// Update consumes this frame's click edge, if any.
func (t *ProvocationTracker) Update(actor domain.ActorSnapshot, now time.Time) {
	if !t.input.PrimaryClicked() {
		return
	}

	next, armed := t.state.OnClick(t.input.Cursor(), actor.Position, now)
	t.state = next
	if armed {
		t.logger.Info("manual override armed", zap.Time("until", next.OverrideUntil))
	}
}

func (t *ProvocationTracker) State() domain.ProvocationState {
	return t.state
}

func (t *ProvocationTracker) OverrideUntil() time.Time {
	return t.state.OverrideUntil
}
