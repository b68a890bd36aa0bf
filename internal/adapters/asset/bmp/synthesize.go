package bmp

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 1920
	Height = 1080

	noiseBars         = 600
	noiseMinWidth     = 10
	noiseMaxWidth     = 260
	noiseMinHeight    = 2
	noiseMaxHeight    = 16
	noiseMinAlpha     = 20
	noiseMaxAlpha     = 100
	headlineSize      = 64
	detailSize        = 30
	fontDPI           = 96
	headlineText      = "SYSTEM BREACH"
	activeProcessText = "HONK.EXE ACTIVE"
	restoreHintText   = "Press ESC to restore desktop"
)

var (
	backgroundColor = color.NRGBA{R: 20, A: 255}
	alertColor      = color.NRGBA{R: 255, G: 35, B: 35, A: 235}
	hintColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Rand is the subset of *math/rand/v2.Rand the synthesizer draws from.
type Rand interface {
	IntN(n int) int
}

type textLine struct {
	text  string
	size  float64
	at    image.Point
	color color.NRGBA
}

var textLines = []textLine{
	{text: headlineText, size: headlineSize, at: image.Pt(80, 120), color: alertColor},
	{text: activeProcessText, size: detailSize, at: image.Pt(90, 240), color: alertColor},
	{text: restoreHintText, size: detailSize, at: image.Pt(90, 300), color: hintColor},
}

// Synthesize paints the fake breach screen: a dark red background covered in
// translucent red bars with three lines of bold text on top.
func Synthesize(rng Rand) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	for range noiseBars {
		x := rng.IntN(Width)
		y := rng.IntN(Height)
		w := noiseMinWidth + rng.IntN(noiseMaxWidth-noiseMinWidth)
		h := noiseMinHeight + rng.IntN(noiseMaxHeight-noiseMinHeight)
		alpha := uint8(noiseMinAlpha + rng.IntN(noiseMaxAlpha-noiseMinAlpha))

		bar := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
		draw.Draw(img, bar, image.NewUniform(color.NRGBA{R: 255, A: alpha}), image.Point{}, draw.Over)
	}

	typeface, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse overlay font: %w", err)
	}

	for _, line := range textLines {
		if err := drawText(img, typeface, line); err != nil {
			return nil, err
		}
	}

	return img, nil
}

func drawText(dst draw.Image, typeface *opentype.Font, line textLine) error {
	face, err := opentype.NewFace(typeface, &opentype.FaceOptions{
		Size:    line.size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create %gpt font face: %w", line.size, err)
	}
	defer face.Close()

	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(line.color),
		Face: face,
		Dot:  fixed.P(line.at.X, line.at.Y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(line.text)

	return nil
}
