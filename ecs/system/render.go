package system

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arrowlanes/ecs"
	"github.com/milk9111/arrowlanes/ecs/component"
	"github.com/milk9111/arrowlanes/ecs/render"
)

// ArrowStyle is the arrow geometry, measured backward from the tip.
type ArrowStyle struct {
	HeadLength    float64
	HeadHalfWidth float64
	ShaftLength   float64
	LineWidth     float64
	Color         color.Color
}

type RenderSystem struct {
	Arrow ArrowStyle
}

func NewRenderSystem(arrow ArrowStyle) *RenderSystem {
	return &RenderSystem{Arrow: arrow}
}

// Draw repaints the whole surface: targets first, arrows on top.
func (r *RenderSystem) Draw(w *ecs.World, dst render.Surface) {
	if r == nil || dst == nil {
		return
	}

	dst.Clear()

	lanes := Lanes(w)
	for _, e := range lanes {
		if t, ok := ecs.Get(w, e, component.TargetComponent.Kind()); ok {
			dst.FillCircle(t.Pos, t.Radius, t.Color)
		}
	}
	for _, e := range lanes {
		if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
			r.drawArrow(dst, *p)
		}
	}
}

func (r *RenderSystem) drawArrow(dst render.Surface, p component.Projectile) {
	g := ArrowGeometryFor(p, r.Arrow)
	dst.StrokeLine(g.Tail, g.Base, r.Arrow.LineWidth, r.Arrow.Color)
	dst.FillPolygon(g.Head[:], r.Arrow.Color)
}

// ArrowGeometry holds the points of one arrow: the shaft runs from Tail to
// Base and the head is the triangle tip, left barb, right barb.
type ArrowGeometry struct {
	Head [3]cp.Vector
	Base cp.Vector
	Tail cp.Vector
}

func ArrowGeometryFor(p component.Projectile, style ArrowStyle) ArrowGeometry {
	u := cp.ForAngle(p.Facing())
	perp := u.Perp()

	base := p.Pos.Sub(u.Mult(style.HeadLength))
	return ArrowGeometry{
		Head: [3]cp.Vector{
			p.Pos,
			base.Add(perp.Mult(style.HeadHalfWidth)),
			base.Sub(perp.Mult(style.HeadHalfWidth)),
		},
		Base: base,
		Tail: p.Pos.Sub(u.Mult(style.HeadLength + style.ShaftLength)),
	}
}
