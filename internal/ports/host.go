package ports

import (
	"context"

	"github.com/bnema/honkbreach/internal/domain"
)

type TickFunc func(ctx context.Context, actor domain.ActorSnapshot)

type RenderFunc func(ctx context.Context, actor domain.ActorSnapshot, surface Surface)

// Host is the simulation that owns the frame loop. It calls every registered
// tick before render within a frame.
type Host interface {
	OnTick(fn TickFunc)
	OnRender(fn RenderFunc)
}

// TaskLookup returns a negative index for unknown task identifiers.
type TaskLookup interface {
	TaskIndexByID(id string) int
}
