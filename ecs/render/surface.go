package render

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Surface is the raster the scene paints on. Coordinates are canvas pixels.
type Surface interface {
	Clear()
	FillCircle(center cp.Vector, radius float64, clr color.Color)
	StrokeLine(from, to cp.Vector, width float64, clr color.Color)
	FillPolygon(points []cp.Vector, clr color.Color)
}

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()                                              {}
func (discard) FillCircle(cp.Vector, float64, color.Color)          {}
func (discard) StrokeLine(_, _ cp.Vector, _ float64, _ color.Color) {}
func (discard) FillPolygon([]cp.Vector, color.Color)                {}
