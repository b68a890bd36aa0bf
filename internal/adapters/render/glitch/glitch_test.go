package glitch

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed draws so each branch can be forced.
type scriptedRand struct {
	floats []float64
	ints   []int
	intNs  []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	r.intNs = append(r.intNs, n)
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

type fill struct {
	rect  image.Rectangle
	color color.NRGBA
}

type line struct {
	y, stroke int
	color     color.NRGBA
}

type recordingSurface struct {
	bounds image.Rectangle
	fills  []fill
	lines  []line
}

func (s *recordingSurface) Bounds() image.Rectangle { return s.bounds }

func (s *recordingSurface) FillRect(r image.Rectangle, c color.NRGBA) {
	s.fills = append(s.fills, fill{rect: r, color: c})
}

func (s *recordingSurface) DrawHorizontalLine(y, stroke int, c color.NRGBA) {
	s.lines = append(s.lines, line{y: y, stroke: stroke, color: c})
}

func TestRendererPaintsWashAndLine(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.1, 0.2, 0.5}, ints: []int{94, 2}}
	surface := &recordingSurface{bounds: image.Rect(0, 0, 800, 600)}

	NewRenderer(rng).Render(surface)

	require.Len(t, surface.fills, 1)
	assert.Equal(t, surface.bounds, surface.fills[0].rect)
	assert.Equal(t, color.NRGBA{R: 220, G: 20, B: 20, A: 139}, surface.fills[0].color)

	require.Len(t, surface.lines, 1)
	assert.Equal(t, line{y: 300, stroke: 3, color: color.NRGBA{R: 255, G: 255, B: 255, A: 180}}, surface.lines[0])
	assert.Equal(t, []int{95, 3}, rng.intNs)
}

func TestRendererSkipsBothWhenDrawsAreHigh(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.7, 0.5}}
	surface := &recordingSurface{bounds: image.Rect(0, 0, 800, 600)}

	NewRenderer(rng).Render(surface)

	assert.Empty(t, surface.fills)
	assert.Empty(t, surface.lines)
}

func TestRendererLineOnly(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.95, 0.49, 0}, ints: []int{0}}
	surface := &recordingSurface{bounds: image.Rect(0, 100, 800, 600)}

	NewRenderer(rng).Render(surface)

	assert.Empty(t, surface.fills)
	require.Len(t, surface.lines, 1)
	assert.Equal(t, 100, surface.lines[0].y)
	assert.Equal(t, 1, surface.lines[0].stroke)
}

func TestRendererIgnoresEmptySurface(t *testing.T) {
	rng := &scriptedRand{}
	surface := &recordingSurface{}

	NewRenderer(rng).Render(surface)

	assert.Empty(t, surface.fills)
	assert.Empty(t, surface.lines)
}

func TestRendererAlphaAndStrokeStayInRange(t *testing.T) {
	renderer := NewRenderer(nil)

	for range 500 {
		surface := &recordingSurface{bounds: image.Rect(0, 0, 64, 48)}
		renderer.Render(surface)

		for _, f := range surface.fills {
			assert.GreaterOrEqual(t, f.color.A, uint8(45))
			assert.Less(t, f.color.A, uint8(140))
		}
		for _, l := range surface.lines {
			assert.GreaterOrEqual(t, l.stroke, 1)
			assert.Less(t, l.stroke, 4)
			assert.GreaterOrEqual(t, l.y, 0)
			assert.Less(t, l.y, 48)
		}
	}
}

func TestImageSurfaceBlendsOverlay(t *testing.T) {
	surface := NewImageSurface(4, 4)

	surface.FillRect(image.Rect(-10, -10, 10, 10), color.NRGBA{R: 255, A: 255})
	assert.Equal(t, color.RGBA{R: 255, A: 255}, surface.Image().RGBAAt(3, 3))

	surface.DrawHorizontalLine(1, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, surface.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, surface.Image().RGBAAt(3, 1))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, surface.Image().RGBAAt(0, 2))

	surface.Clear()
	assert.Equal(t, color.RGBA{}, surface.Image().RGBAAt(0, 0))
}
