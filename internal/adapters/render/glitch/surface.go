package glitch

import (
	"image"
	"image/color"

	"github.com/bnema/honkbreach/internal/ports"
	"golang.org/x/image/draw"
)

// ImageSurface draws onto an in-memory RGBA frame.
type ImageSurface struct {
	img *image.RGBA
}

var _ ports.Surface = (*ImageSurface)(nil)

func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *ImageSurface) FillRect(r image.Rectangle, c color.NRGBA) {
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

func (s *ImageSurface) DrawHorizontalLine(y, stroke int, c color.NRGBA) {
	if stroke < 1 {
		stroke = 1
	}

	top := y - stroke/2
	bounds := s.img.Bounds()
	s.FillRect(image.Rect(bounds.Min.X, top, bounds.Max.X, top+stroke), c)
}

// Clear resets every pixel to transparent.
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}
