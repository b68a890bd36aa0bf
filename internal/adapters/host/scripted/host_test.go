package scripted

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

func TestHostRunsTickBeforeRenderEachFrame(t *testing.T) {
	click := domain.Vec2{X: 10, Y: 20}
	host := NewHost(Scenario{
		Frames: []Frame{
			{At: 0, Actor: domain.ActorSnapshot{CurrentTask: 1}},
			{At: 500 * time.Millisecond, Actor: domain.ActorSnapshot{CurrentTask: 2}, Click: &click},
		},
	}, start)

	var events []string
	host.OnTick(func(_ context.Context, actor domain.ActorSnapshot) {
		events = append(events, "tick")
		if actor.CurrentTask == 2 {
			assert.True(t, host.PrimaryClicked())
			assert.Equal(t, click, host.Cursor())
			assert.Equal(t, start.Add(500*time.Millisecond), host.Now())
		} else {
			assert.False(t, host.PrimaryClicked())
			assert.Equal(t, domain.Vec2{}, host.Cursor())
		}
	})
	host.OnRender(func(_ context.Context, _ domain.ActorSnapshot, surface ports.Surface) {
		events = append(events, "render")
		assert.Equal(t, DefaultWidth, surface.Bounds().Dx())
	})

	var observed []FrameResult
	require.NoError(t, host.Run(context.Background(), func(r FrameResult) { observed = append(observed, r) }))

	assert.Equal(t, []string{"tick", "render", "tick", "render"}, events)
	require.Len(t, observed, 2)
	assert.Equal(t, 500*time.Millisecond, observed[1].At)
	assert.Equal(t, -1, host.ExitCode())
}

func TestHostStopsAfterExitAndSkipsRender(t *testing.T) {
	host := NewHost(Scenario{
		Frames: []Frame{
			{At: 0},
			{At: time.Second, Cancel: true},
			{At: 2 * time.Second},
		},
	}, start)

	ticks, renders := 0, 0
	host.OnTick(func(context.Context, domain.ActorSnapshot) {
		ticks++
		if host.CancelPressed() {
			host.Exit(0)
		}
	})
	host.OnRender(func(context.Context, domain.ActorSnapshot, ports.Surface) { renders++ })

	var last FrameResult
	require.NoError(t, host.Run(context.Background(), func(r FrameResult) { last = r }))

	assert.Equal(t, 2, ticks)
	assert.Equal(t, 1, renders)
	assert.True(t, last.Exited)
	assert.Equal(t, 1, last.Index)
	assert.Equal(t, 0, host.ExitCode())
}

func TestHostTaskLookup(t *testing.T) {
	host := NewHost(Scenario{Tasks: map[string]int{"AttackMouse": 7}}, start)

	assert.Equal(t, 7, host.TaskIndexByID("AttackMouse"))
	assert.Equal(t, -1, host.TaskIndexByID("Sleep"))
}

func TestHostRejectsEmptyScenario(t *testing.T) {
	host := NewHost(Scenario{}, start)

	assert.ErrorIs(t, host.Run(context.Background(), nil), errNoFrames)
}

func TestHostStopsOnCancelledContext(t *testing.T) {
	host := NewHost(Scenario{Frames: []Frame{{}, {}}}, start)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, host.Run(ctx, nil), context.Canceled)
}

func TestHostHonoursSurfaceSize(t *testing.T) {
	host := NewHost(Scenario{Width: 64, Height: 32}, start)

	assert.Equal(t, 64, host.Surface().Bounds().Dx())
	assert.Equal(t, 32, host.Surface().Bounds().Dy())
}
