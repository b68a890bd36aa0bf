package ports

import (
	"image"
	"image/color"
)

type Surface interface {
	Bounds() image.Rectangle
	FillRect(r image.Rectangle, c color.NRGBA)
	DrawHorizontalLine(y, stroke int, c color.NRGBA)
}

type DisturbanceRenderer interface {
	Render(surface Surface)
}
