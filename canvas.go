package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arrowlanes/ecs/render"
)

// Canvas implements render.Surface on top of an ebiten image. The image keeps its
// pixels between frames, the way an HTML canvas does.
type Canvas struct {
	dst        *ebiten.Image
	background color.Color
	white      *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewCanvas wraps dst. A nil background clears to transparent.
func NewCanvas(dst *ebiten.Image, background color.Color) *Canvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Canvas{
		dst:        dst,
		background: background,
		white:      white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image {
	return c.dst
}

func (c *Canvas) Clear() {
	if c.background == nil {
		c.dst.Clear()
		return
	}
	c.dst.Fill(c.background)
}

func (c *Canvas) FillCircle(center cp.Vector, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c *Canvas) StrokeLine(from, to cp.Vector, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr, true)
}

func (c *Canvas) FillPolygon(points []cp.Vector, clr color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r, g, b, a := render.VertexColor(clr)
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	c.dst.DrawTriangles(c.vs, c.is, c.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// SetTarget points the canvas at a new image, for example after the layout
// changed the canvas size.
func (c *Canvas) SetTarget(dst *ebiten.Image, background color.Color) {
	c.dst = dst
	c.background = background
}
