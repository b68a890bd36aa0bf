package application

import (
	"context"

	"github.com/bnema/honkbreach/internal/ports"
	"go.uber.org/zap"
)

// ExitGuard restores the desktop and ends the process when the cancel key is
// held, whatever the actor is doing.
type ExitGuard struct {
	input    ports.Input
	takeover *TakeoverController
	exiter   ports.Exiter
	logger   *zap.Logger
}

func NewExitGuard(input ports.Input, takeover *TakeoverController, exiter ports.Exiter, logger *zap.Logger) *ExitGuard {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ExitGuard{input: input, takeover: takeover, exiter: exiter, logger: logger}
}

// Check reports whether exit was requested. Exit may return when the exiter
// does not terminate the process, so callers must stop the frame then.
func (g *ExitGuard) Check(ctx context.Context) bool {
	if !g.input.CancelPressed() {
		return false
	}

	if err := g.takeover.ForceNormal(ctx); err != nil {
		g.logger.Warn("restore before exit", zap.Error(err))
	}

	g.logger.Info("exit requested")
	g.exiter.Exit(0)

	return true
}
