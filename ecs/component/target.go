package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Target is the stationary disk a lane's projectile flies at.
type Target struct {
	Pos       cp.Vector
	Radius    float64
	Color     color.Color
	BaseColor color.Color
	HitColor  color.Color
}

// Contains reports whether p lies in the closed disk of the target.
func (t Target) Contains(p cp.Vector) bool {
	return p.DistanceSq(t.Pos) <= t.Radius*t.Radius
}

var TargetComponent = NewComponent[Target]()
