package scripted

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/honkbreach/internal/adapters/render/glitch"
	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
)

const (
	DefaultWidth  = 320
	DefaultHeight = 180
)

var errNoFrames = errors.New("scenario has no frames")

type Frame struct {
	At     time.Duration
	Actor  domain.ActorSnapshot
	Click  *domain.Vec2
	Cancel bool
}

type Scenario struct {
	Name    string
	Tasks   map[string]int
	Desktop domain.WallpaperSettings
	Width   int
	Height  int
	Frames  []Frame
}

type FrameResult struct {
	Index  int
	At     time.Duration
	Actor  domain.ActorSnapshot
	Exited bool
}

// Host replays a scenario frame by frame. Besides the frame loop it plays the
// task database, the input devices, the clock and the process.
type Host struct {
	scenario Scenario
	start    time.Time
	ticks    []ports.TickFunc
	renders  []ports.RenderFunc
	surface  *glitch.ImageSurface
	current  Frame
	exited   bool
	exitCode int
}

var (
	_ ports.Host       = (*Host)(nil)
	_ ports.TaskLookup = (*Host)(nil)
	_ ports.Input      = (*Host)(nil)
	_ ports.Clock      = (*Host)(nil)
	_ ports.Exiter     = (*Host)(nil)
)

func NewHost(scenario Scenario, start time.Time) *Host {
	width, height := scenario.Width, scenario.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	return &Host{
		scenario: scenario,
		start:    start,
		surface:  glitch.NewImageSurface(width, height),
		exitCode: -1,
	}
}

func (h *Host) OnTick(fn ports.TickFunc) {
	h.ticks = append(h.ticks, fn)
}

func (h *Host) OnRender(fn ports.RenderFunc) {
	h.renders = append(h.renders, fn)
}

func (h *Host) TaskIndexByID(id string) int {
	if index, ok := h.scenario.Tasks[id]; ok {
		return index
	}
	return -1
}

func (h *Host) PrimaryClicked() bool {
	return h.current.Click != nil
}

func (h *Host) Cursor() domain.Vec2 {
	if h.current.Click == nil {
		return domain.Vec2{}
	}
	return *h.current.Click
}

func (h *Host) CancelPressed() bool {
	return h.current.Cancel
}

func (h *Host) Now() time.Time {
	return h.start.Add(h.current.At)
}

func (h *Host) Exit(code int) {
	h.exited = true
	h.exitCode = code
}

// ExitCode is -1 until something asked the process to exit.
func (h *Host) ExitCode() int {
	return h.exitCode
}

func (h *Host) Surface() *glitch.ImageSurface {
	return h.surface
}

// Run plays every frame: all ticks, then all renders. It stops after the frame
// in which the process asked to exit.
func (h *Host) Run(ctx context.Context, observe func(FrameResult)) error {
	if len(h.scenario.Frames) == 0 {
		return errNoFrames
	}

	for i, frame := range h.scenario.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.current = frame
		h.surface.Clear()

		for _, tick := range h.ticks {
			tick(ctx, frame.Actor)
			if h.exited {
				break
			}
		}

		if !h.exited {
			for _, render := range h.renders {
				render(ctx, frame.Actor, h.surface)
			}
		}

		if observe != nil {
			observe(FrameResult{Index: i, At: frame.At, Actor: frame.Actor, Exited: h.exited})
		}

		if h.exited {
			return nil
		}
	}

	return nil
}
