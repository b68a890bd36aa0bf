package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"go.uber.org/zap"
)

var errMissingDependency = errors.New("missing prank dependency")

type Deps struct {
	Lookup   ports.TaskLookup
	Input    ports.Input
	Clock    ports.Clock
	Desktop  ports.DesktopSettings
	Assets   ports.AssetProvider
	Renderer ports.DisturbanceRenderer
	Exiter   ports.Exiter
	Logger   *zap.Logger
}

// Prank is the mod a host loads: it reacts to the actor every tick and paints
// the disturbance every render while the desktop is hijacked.
type Prank struct {
	classifier  *TaskClassifier
	provocation *ProvocationTracker
	takeover    *TakeoverController
	guard       *ExitGuard
	clock       ports.Clock
	renderer    ports.DisturbanceRenderer
	logger      *zap.Logger
	lastSignal  domain.AgitationCause
}

func NewPrank(deps Deps) (*Prank, error) {
	switch {
	case deps.Lookup == nil:
		return nil, fmt.Errorf("%w: task lookup", errMissingDependency)
	case deps.Input == nil:
		return nil, fmt.Errorf("%w: input", errMissingDependency)
	case deps.Desktop == nil:
		return nil, fmt.Errorf("%w: desktop settings", errMissingDependency)
	case deps.Assets == nil:
		return nil, fmt.Errorf("%w: asset provider", errMissingDependency)
	case deps.Renderer == nil:
		return nil, fmt.Errorf("%w: renderer", errMissingDependency)
	case deps.Exiter == nil:
		return nil, fmt.Errorf("%w: exiter", errMissingDependency)
	}

	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	takeover := NewTakeoverController(deps.Desktop, deps.Assets, logger.Named("takeover"))

	return &Prank{
		classifier:  NewTaskClassifier(deps.Lookup, domain.AggressiveTaskNames(), logger.Named("classifier")),
		provocation: NewProvocationTracker(deps.Input, logger.Named("provocation")),
		takeover:    takeover,
		guard:       NewExitGuard(deps.Input, takeover, deps.Exiter, logger.Named("exit")),
		clock:       clock,
		renderer:    deps.Renderer,
		logger:      logger,
	}, nil
}

func (p *Prank) Init(host ports.Host) {
	host.OnTick(p.Tick)
	host.OnRender(p.Render)
}

func (p *Prank) Tick(ctx context.Context, actor domain.ActorSnapshot) {
	tasks := p.classifier.Resolve()
	now := p.clock.Now()

	p.provocation.Update(actor, now)

	if p.guard.Check(ctx) {
		return
	}

	p.lastSignal = domain.Agitation(actor, tasks, p.provocation.OverrideUntil(), now)
	if err := p.takeover.Step(ctx, p.lastSignal.Agitated()); err != nil {
		p.logger.Debug("takeover step degraded", zap.Error(err))
	}
}

func (p *Prank) Render(_ context.Context, _ domain.ActorSnapshot, surface ports.Surface) {
	if !p.takeover.Hijacked() {
		return
	}

	p.renderer.Render(surface)
}

func (p *Prank) Takeover() *TakeoverController {
	return p.takeover
}

func (p *Prank) Provocation() domain.ProvocationState {
	return p.provocation.State()
}

// LastSignal is the agitation computed by the most recent completed tick.
func (p *Prank) LastSignal() domain.AgitationCause {
	return p.lastSignal
}
