package glitch

import (
	"image/color"
	"math/rand/v2"

	"github.com/bnema/honkbreach/internal/ports"
)

const (
	overlayProbability    = 0.7
	overlayMinAlpha       = 45
	overlayMaxAlpha       = 140
	glitchLineProbability = 0.5
	glitchMinStroke       = 1
	glitchMaxStroke       = 4
	glitchLineAlpha       = 180
)

var overlayRed = color.NRGBA{R: 220, G: 20, B: 20}

type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Renderer paints a random red wash and a white scan line. It keeps no state
// between frames beyond its random source.
type Renderer struct {
	rng Rand
}

var _ ports.DisturbanceRenderer = (*Renderer)(nil)

func NewRenderer(rng Rand) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Renderer{rng: rng}
}

func (r *Renderer) Render(surface ports.Surface) {
	bounds := surface.Bounds()
	if bounds.Empty() {
		return
	}

	if r.rng.Float64() < overlayProbability {
		wash := overlayRed
		wash.A = uint8(overlayMinAlpha + r.rng.IntN(overlayMaxAlpha-overlayMinAlpha))
		surface.FillRect(bounds, wash)
	}

	if r.rng.Float64() < glitchLineProbability {
		stroke := glitchMinStroke + r.rng.IntN(glitchMaxStroke-glitchMinStroke)
		y := bounds.Min.Y + int(r.rng.Float64()*float64(bounds.Dy()))
		surface.DrawHorizontalLine(y, stroke, color.NRGBA{R: 255, G: 255, B: 255, A: glitchLineAlpha})
	}
}
